package serializer

import (
	"time"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
)

type FeedbackView struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func BuildFeedback(f *model.Feedback) FeedbackView {
	v := FeedbackView{
		ID:        f.ID,
		ProjectID: f.ProjectID,
		UserID:    f.UserID,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.User != nil {
		v.Username = f.User.Username
	}
	return v
}

func BuildFeedbacks(items []model.Feedback) []FeedbackView {
	views := make([]FeedbackView, 0, len(items))
	for i := range items {
		views = append(views, BuildFeedback(&items[i]))
	}
	return views
}

// ProjectView exposes all persisted project fields plus the computed
// average_rating (0 when unrated), rating_count, owner username and, when the
// requester is authenticated, their own rating.
type ProjectView struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Username      string         `json:"username,omitempty"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	UploadPath    string         `json:"upload_path"`
	VideoURL      string         `json:"video_url"`
	Thumbnail     string         `json:"thumbnail"`
	AverageRating float64        `json:"average_rating"`
	RatingCount   int64          `json:"rating_count"`
	MyRating      *int           `json:"my_rating"`
	Feedbacks     []FeedbackView `json:"feedbacks"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// BuildProject computes aggregates from the preloaded ratings. requester may
// be nil (anonymous read); my_rating stays null then.
func BuildProject(p *model.Project, requester *model.User) ProjectView {
	var sum, count int64
	var myRating *int
	for i := range p.Ratings {
		sum += int64(p.Ratings[i].Rating)
		count++
		if requester != nil && p.Ratings[i].UserID == requester.ID {
			r := p.Ratings[i].Rating
			myRating = &r
		}
	}
	avg := 0.0
	if count > 0 {
		avg = float64(sum) / float64(count)
	}

	v := ProjectView{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		UploadPath:    p.UploadPath,
		VideoURL:      p.VideoURL,
		Thumbnail:     p.Thumbnail,
		AverageRating: avg,
		RatingCount:   count,
		MyRating:      myRating,
		Feedbacks:     BuildFeedbacks(p.Feedbacks),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.User != nil {
		v.Username = p.User.Username
	}
	return v
}

// BuildProjectDetail is the retrieve-path variant: aggregates come from the
// rating cache (or a SQL aggregate on miss) instead of preloaded rows.
func BuildProjectDetail(p *model.Project, avg float64, count int64, myRating *int) ProjectView {
	v := ProjectView{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		UploadPath:    p.UploadPath,
		VideoURL:      p.VideoURL,
		Thumbnail:     p.Thumbnail,
		AverageRating: avg,
		RatingCount:   count,
		MyRating:      myRating,
		Feedbacks:     BuildFeedbacks(p.Feedbacks),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.User != nil {
		v.Username = p.User.Username
	}
	return v
}

func BuildProjects(items []model.Project, requester *model.User) []ProjectView {
	views := make([]ProjectView, 0, len(items))
	for i := range items {
		views = append(views, BuildProject(&items[i], requester))
	}
	return views
}
