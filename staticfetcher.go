package doctext

import (
	"context"
)

// StaticFetcher is an implementation of the Fetcher that maintains a
// static mapping of names to Function instances. The mapping is fixed
// at build time so changes to the function set require a new build and
// deployment of the service. In exchange there is no dynamic loading
// machinery that might fail at runtime and all invocations execute
// within the process using the runtime's own resources.
type StaticFetcher struct {
	// Functions is the underlying static map of function names to
	// executable functions. The keys of the map will be used as the
	// name of the Function.
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NotFoundError{ID: name}
	}
	return h, nil
}
