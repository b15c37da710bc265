package docstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/snappy"

	"github.com/lumennet/photonic/pkg/schema"
)

// S3API is the slice of the S3 client the store uses.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store fetches and stores documents in one S3 bucket. Object keys carry
// the same extensions as local files and select the encoding the same way.
type S3Store struct {
	client S3API
	bucket string
}

// NewS3Store builds a store against the ambient AWS configuration.
func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws configuration: %w", err)
	}
	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// NewS3StoreWithClient builds a store around an existing client.
func NewS3StoreWithClient(client S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Fetch loads the document stored under key.
func (s *S3Store) Fetch(ctx context.Context, key string) (*schema.Document, error) {
	format := FormatForPath(key)
	if format == FormatUnknown {
		return nil, fmt.Errorf("fetching s3://%s/%s: unrecognized document format", s.bucket, key)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	var body io.Reader = out.Body
	if format == FormatSnappy {
		body = snappy.NewReader(out.Body)
	}
	doc, err := Decode(body, format)
	if err != nil {
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", s.bucket, key, err)
	}
	return doc, nil
}

// Put stores the document under key.
func (s *S3Store) Put(ctx context.Context, key string, doc *schema.Document) error {
	format := FormatForPath(key)
	if format == FormatUnknown {
		return fmt.Errorf("storing s3://%s/%s: unrecognized document format", s.bucket, key)
	}

	var buf bytes.Buffer
	if format == FormatSnappy {
		sw := snappy.NewBufferedWriter(&buf)
		if err := Encode(sw, doc, format); err != nil {
			return fmt.Errorf("storing s3://%s/%s: %w", s.bucket, key, err)
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("storing s3://%s/%s: %w", s.bucket, key, err)
		}
	} else if err := Encode(&buf, doc, format); err != nil {
		return fmt.Errorf("storing s3://%s/%s: %w", s.bucket, key, err)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("storing s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
