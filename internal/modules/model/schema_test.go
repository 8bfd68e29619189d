package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, v interface{}) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(v, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)
	return s
}

// The (project_id, user_id) unique index is what turns concurrent rating
// submissions into an upsert instead of duplicate rows.
func TestRatingSchema_UniquePerProjectUser(t *testing.T) {
	s := parseSchema(t, &Rating{})

	idx := s.LookIndex("idx_ratings_project_user")
	if assert.NotNil(t, idx, "composite index missing") {
		assert.Equal(t, "UNIQUE", idx.Class)
		cols := make([]string, 0, len(idx.Fields))
		for _, f := range idx.Fields {
			cols = append(cols, f.DBName)
		}
		assert.ElementsMatch(t, []string{"project_id", "user_id"}, cols)
	}
}

func TestRatingSchema_BoundsCheck(t *testing.T) {
	s := parseSchema(t, &Rating{})

	found := false
	for _, chk := range s.ParseCheckConstraints() {
		if chk.Field != nil && chk.Field.DBName == "rating" {
			found = true
			assert.Contains(t, chk.Constraint, ">= 1")
			assert.Contains(t, chk.Constraint, "<= 5")
		}
	}
	assert.True(t, found, "rating bounds check missing")
}

// Deleting a user must take every row they own with them.
func TestUserSchema_DeleteCascades(t *testing.T) {
	s := parseSchema(t, &User{})

	owned := []string{
		"Projects",
		"Feedbacks",
		"Ratings",
		"Reactions",
		"Collaborations",
		"Notifications",
		"SearchLogs",
	}
	for _, name := range owned {
		rel, ok := s.Relationships.Relations[name]
		if !assert.True(t, ok, "relation %s missing", name) {
			continue
		}
		constraint := rel.ParseConstraint()
		if assert.NotNil(t, constraint, "constraint for %s missing", name) {
			assert.Equal(t, "CASCADE", constraint.OnDelete, name)
		}
	}
}

// Project deletion removes its ratings, feedback, reactions and
// collaborations the same way.
func TestProjectSchema_DeleteCascades(t *testing.T) {
	s := parseSchema(t, &Project{})

	for _, name := range []string{"Feedbacks", "Ratings", "Reactions", "Collaborations"} {
		rel, ok := s.Relationships.Relations[name]
		if !assert.True(t, ok, "relation %s missing", name) {
			continue
		}
		constraint := rel.ParseConstraint()
		if assert.NotNil(t, constraint, "constraint for %s missing", name) {
			assert.Equal(t, "CASCADE", constraint.OnDelete, name)
		}
	}
}
