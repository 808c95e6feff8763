package doctext

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hello is lifted straight from the aws-lambda-go README.md file.
func hello() (string, error) {
	return "Hello ƛ!", nil
}

func TestStartModeUnknown(t *testing.T) {
	fetcher := &StaticFetcher{Functions: map[string]Function{}}

	err := StartMode(context.Background(), nil, fetcher, "bogus", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown build mode")
}

func TestStartLambdaRequiresTarget(t *testing.T) {
	fetcher := &StaticFetcher{Functions: map[string]Function{}}

	err := StartLambda(context.Background(), nil, fetcher, "")
	require.Error(t, err)
}

func TestStartLambdaFetchError(t *testing.T) {
	fetcher := &StaticFetcher{Functions: map[string]Function{}}

	err := StartLambda(context.Background(), nil, fetcher, "missing")
	require.Error(t, err)
	assert.IsType(t, NotFoundError{}, err)
}

func TestStartLambda(t *testing.T) {
	fn := NewFunction(hello)
	fetcher := &StaticFetcher{Functions: map[string]Function{"hello": fn}}

	var started lambda.Handler
	originalStartHandler := LambdaStartFn
	defer func() {
		LambdaStartFn = originalStartHandler
	}()
	LambdaStartFn = func(h lambda.Handler) {
		started = h
	}

	require.NoError(t, StartLambda(context.Background(), nil, fetcher, "hello"))
	require.NotNil(t, started)
	assert.Equal(t, fn, started)
}

func TestStartLambdaMock(t *testing.T) {
	fn := NewFunction(hello)
	fetcher := &StaticFetcher{Functions: map[string]Function{"hello": fn}}

	var started lambda.Handler
	originalStartHandler := LambdaStartFn
	defer func() {
		LambdaStartFn = originalStartHandler
	}()
	LambdaStartFn = func(h lambda.Handler) {
		started = h
	}

	require.NoError(t, StartLambdaMock(context.Background(), nil, fetcher, "hello"))
	require.NotNil(t, started)

	mocked, ok := started.(Function)
	require.True(t, ok)
	require.IsType(t, hello, mocked.Source())

	res, err := mocked.Invoke(context.Background(), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`""`), res)
}
