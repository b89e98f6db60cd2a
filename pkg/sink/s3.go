package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// HTMLContentType is the content type uploaded objects carry by default.
const HTMLContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of *s3.Client used for uploads.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadOption configures UploadS3.
type UploadOption func(*s3.PutObjectInput)

// WithContentType overrides HTMLContentType.
func WithContentType(ct string) UploadOption {
	return func(in *s3.PutObjectInput) {
		in.ContentType = aws.String(ct)
	}
}

// WithMetadata attaches user metadata to the object.
func WithMetadata(md map[string]string) UploadOption {
	return func(in *s3.PutObjectInput) {
		in.Metadata = md
	}
}

// UploadS3 renders src into memory and stores it as bucket/key.
//
// The body is buffered because request signing needs a seekable payload of
// known length.
func UploadS3(ctx context.Context, client PutObjectAPI, bucket, key string, src io.WriterTo, opts ...UploadOption) error {
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(HTMLContentType),
	}
	for _, opt := range opts {
		opt(in)
	}

	if _, err := client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// ParseS3URL splits s3://bucket/key. ok is false for anything else,
// including a URL without a key.
func ParseS3URL(raw string) (bucket, key string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", false
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", false
	}
	return u.Host, key, true
}

// NewS3Client returns a client for region that reads static credentials
// from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	})
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
