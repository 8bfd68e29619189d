package blob

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/config"
)

// S3Deps holds the clients used for profile pictures and project
// thumbnails/uploads. Entity rows only ever store the resulting object URL.
type S3Deps struct {
	Client        *s3.Client
	Uploader      *manager.Uploader
	Presigner     *s3.PresignClient
	Bucket        string
	PublicBaseURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	return &S3Deps{
		Client:        client,
		Uploader:      manager.NewUploader(client),
		Presigner:     s3.NewPresignClient(client),
		Bucket:        cfg.S3.Bucket,
		PublicBaseURL: strings.TrimRight(cfg.S3.PublicBaseURL, "/"),
	}, nil
}

// ObjectKey builds a collision-free key under the given prefix
// (e.g. "profile_pics", "projects"), keeping the original extension.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	datePrefix := time.Now().UTC().Format("2006/01/02")
	return fmt.Sprintf("%s/%s/%s%s", prefix, datePrefix, uuid.NewString(), ext)
}

// ObjectURL is the public URL stored on entity rows for a given key.
func (s *S3Deps) ObjectURL(key string) string {
	return s.PublicBaseURL + "/" + key
}

// PresignPut generates a pre-signed PUT URL so clients upload directly to S3.
func (s *S3Deps) PresignPut(ctx context.Context, key, contentType string, expire time.Duration) (string, error) {
	ps, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.Bucket,
		Key:         &key,
		ContentType: &contentType,
	}, func(po *s3.PresignOptions) {
		po.Expires = expire
	})
	if err != nil {
		return "", err
	}
	return ps.URL, nil
}

// UploadFormFile uploads a multipart file server-side and returns its public URL.
func (s *S3Deps) UploadFormFile(ctx context.Context, prefix string, fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := ObjectKey(prefix, fh.Filename)
	_, err = s.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fh.Header.Get("Content-Type")),
		Metadata:    map[string]string{"name": fh.Filename},
	})
	if err != nil {
		return "", err
	}
	return s.ObjectURL(key), nil
}
