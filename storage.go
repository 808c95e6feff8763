package doctext

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client consumed by the service. The
// narrow interface keeps the adapter replaceable in tests without
// standing up a real endpoint.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store is an ObjectStore implementation backed by an S3 compatible
// service.
type S3Store struct {
	Client S3API
}

// Put writes the body to the bucket under the given key as a single
// object.
func (s *S3Store) Put(ctx context.Context, bucket string, key string, body io.Reader) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	return err
}
