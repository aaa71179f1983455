package presence

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/presence-analyzer/presence-analyzer/internal/config"
)

// Source provides the raw presence CSV.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

type FileSource struct {
	Path string
}

func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

func (f FileSource) Name() string {
	return f.Path
}

type s3Getter interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}

// S3Source reads the presence CSV from an S3 object.
type S3Source struct {
	client s3Getter
	Bucket string
	Key    string
}

func NewS3Source(cfg config.S3) (*S3Source, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Source{client: s3.New(sess), Bucket: cfg.Bucket, Key: cfg.Key}, nil
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *S3Source) Name() string {
	return "s3://" + s.Bucket + "/" + s.Key
}

// NewSource builds the Source selected by configuration.
func NewSource(cfg config.Data) (Source, error) {
	switch cfg.Source {
	case "", config.FileSource:
		return FileSource{Path: cfg.Csv}, nil
	case config.S3Source:
		return NewS3Source(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown presence source %q", cfg.Source)
	}
}
