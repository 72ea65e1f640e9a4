// Package archive keeps a copy of every delivered lesson in S3-compatible storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/dailylesson/pkg/mailer"
)

const htmlContentType = "text/html; charset=utf-8"

// S3 uploads rendered lessons to a bucket.
type S3 struct {
	client *s3.Client
	cfg    Config
}

// New creates an archive client.
func New(cfg Config) (*S3, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			// S3-compatible providers differ in checksum support; send one only when required.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Key returns the object key for a lesson: {prefix}/{course}/day-{NN}.html.
func (s *S3) Key(course string, day int) string {
	return path.Join(
		strings.Trim(s.cfg.Prefix, "/"),
		sanitizePathSegment(course),
		fmt.Sprintf("day-%02d.html", day),
	)
}

// Archive uploads the rendered HTML of doc and returns its key.
// Re-archiving the same day overwrites the previous object.
func (s *S3) Archive(ctx context.Context, course string, doc *mailer.Document) (string, error) {
	key := s.Key(course, doc.Day)
	body := []byte(doc.HTML)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(htmlContentType),
		Metadata: map[string]string{
			"lesson-day":   fmt.Sprintf("%d", doc.Day),
			"lesson-total": fmt.Sprintf("%d", doc.Total),
		},
	})
	if err != nil {
		return "", wrapS3Error(err)
	}

	return key, nil
}

// sanitizePathSegment keeps letters, digits, dash and underscore.
func sanitizePathSegment(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == '/':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "course"
	}
	return b.String()
}
