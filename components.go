package doctext

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWSConfig contains the settings shared by all AWS service clients.
type AWSConfig struct {
	Region string `description:"AWS region used by the service clients. Defaults to the SDK resolution chain."`
}

// Name of the configuration group.
func (*AWSConfig) Name() string {
	return "aws"
}

// AWSComponent loads the base AWS client configuration.
type AWSComponent struct{}

// Settings generates the default configuration.
func (*AWSComponent) Settings() *AWSConfig {
	return &AWSConfig{}
}

// New resolves the client configuration using the standard SDK chain
// with any configured overrides applied.
func (*AWSComponent) New(ctx context.Context, conf *AWSConfig) (*aws.Config, error) {
	opts := make([]func(*config.LoadOptions) error, 0, 1)
	if conf.Region != "" {
		opts = append(opts, config.WithRegion(conf.Region))
	}
	c, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// StorageConfig contains the settings for the object store client.
type StorageConfig struct {
	Endpoint  string `description:"Optional S3 compatible endpoint override for local object stores."`
	PathStyle bool   `description:"Use path style addressing rather than virtual hosted buckets. Most local object stores require this."`
}

// Name of the configuration group.
func (*StorageConfig) Name() string {
	return "storage"
}

// StorageComponent constructs the object store adapter.
type StorageComponent struct {
	// Config is the resolved AWS client configuration.
	Config aws.Config
}

// Settings generates the default configuration.
func (*StorageComponent) Settings() *StorageConfig {
	return &StorageConfig{}
}

// New produces an S3 backed ObjectStore.
func (c *StorageComponent) New(ctx context.Context, conf *StorageConfig) (*S3Store, error) {
	client := s3.NewFromConfig(c.Config, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
		o.UsePathStyle = conf.PathStyle
	})
	return &S3Store{Client: client}, nil
}

// UploadConfig contains the settings for the upload function.
type UploadConfig struct {
	Bucket string `description:"Destination bucket for uploaded files. Required."`
}

// Name of the configuration group.
func (*UploadConfig) Name() string {
	return "upload"
}

// UploadComponent constructs the upload function handler.
type UploadComponent struct {
	// Store is the destination object store.
	Store ObjectStore
}

// Settings generates the default configuration.
func (*UploadComponent) Settings() *UploadConfig {
	return &UploadConfig{}
}

// New produces an UploadHandler bound to the configured bucket. The
// bucket has no default value and must be set for construction to
// succeed.
func (c *UploadComponent) New(ctx context.Context, conf *UploadConfig) (*UploadHandler, error) {
	if conf.Bucket == "" {
		return nil, fmt.Errorf("upload bucket must be set")
	}
	return &UploadHandler{
		Store:  c.Store,
		Bucket: conf.Bucket,
		LogFn:  LoggerFromContext,
		StatFn: StatFromContext,
	}, nil
}
