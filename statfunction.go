package doctext

import (
	"context"

	"github.com/rs/xstats"
)

type statFunction struct {
	Function
	Name   string
	StatFn StatFn
}

func (f *statFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	stat := f.StatFn(ctx)
	stat.AddTags("function:" + f.Name)
	ctx = xstats.NewContext(ctx, stat)
	return f.Function.Invoke(ctx, b)
}

// statFetcher wraps each fetched function in a decorator that tags
// the invocation stat client with the function name so that metrics
// emitted by the function body are attributable.
type statFetcher struct {
	StatFn  StatFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds stat client tagging.
func (f *statFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statFunction{StatFn: f.StatFn, Name: name, Function: r}, nil
}
