package doctext

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorePut(t *testing.T) {
	client := &fakeS3{}
	store := &S3Store{Client: client}

	err := store.Put(context.Background(), "docs-bucket", "processed/report.pdf.txt", strings.NewReader("INVOICE 2208\n"))
	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "docs-bucket", aws.ToString(client.input.Bucket))
	assert.Equal(t, "processed/report.pdf.txt", aws.ToString(client.input.Key))

	body, errRead := io.ReadAll(client.input.Body)
	require.NoError(t, errRead)
	assert.Equal(t, "INVOICE 2208\n", string(body))
}

func TestS3StorePutError(t *testing.T) {
	client := &fakeS3{err: errors.New("denied")}
	store := &S3Store{Client: client}

	err := store.Put(context.Background(), "docs-bucket", "report.pdf", strings.NewReader("data"))
	require.EqualError(t, err, "denied")
}
