package doctext

import (
	"context"
	"errors"
	"testing"

	"github.com/asecurityteam/logevent/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	nopLogger
	fields map[string]interface{}
}

func (l *recordingLogger) SetField(name string, value interface{}) {
	l.fields[name] = value
}

func (l *recordingLogger) Copy() Logger {
	return l
}

func TestLoggingFetcherAnnotatesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := &recordingLogger{fields: make(map[string]interface{})}
	fn := NewMockFunction(ctrl)
	fetcher := NewMockFetcher(ctrl)
	lFetcher := &loggingFetcher{
		LogFn:   func(context.Context) Logger { return logger },
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), "upload").Return(fn, nil)
	fn.EXPECT().Invoke(gomock.Any(), []byte("{}")).Do(func(ctx context.Context, _ []byte) {
		assert.Equal(t, logger, logevent.FromContext(ctx))
	}).Return([]byte("{}"), nil)

	lfn, err := lFetcher.Fetch(context.Background(), "upload")
	require.NoError(t, err)

	_, err = lfn.Invoke(context.Background(), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "upload", logger.fields["function"])
	assert.NotEmpty(t, logger.fields["invocation_id"])
}

func TestLoggingFetcherFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockFetcher(ctrl)
	lFetcher := &loggingFetcher{
		LogFn:   testLogFn,
		Fetcher: fetcher,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("fail"))

	_, err := lFetcher.Fetch(context.Background(), "upload")
	require.Error(t, err)
}
