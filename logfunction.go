package doctext

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/google/uuid"
)

type loggingFunction struct {
	Function
	Name  string
	LogFn LogFn
}

func (f *loggingFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.LogFn(ctx).Copy()
	logger.SetField("function", f.Name)
	logger.SetField("invocation_id", uuid.New().String())
	ctx = logevent.NewContext(ctx, logger)
	return f.Function.Invoke(ctx, b)
}

// loggingFetcher wraps each fetched function in a decorator that
// annotates the invocation logger with the function name and a unique
// id before injecting it back into the context.
type loggingFetcher struct {
	LogFn   LogFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log injection.
func (f *loggingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingFunction{LogFn: f.LogFn, Name: name, Function: r}, nil
}
