package doctext

import (
	"context"
	"io"

	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

//go:generate mockgen -source=domain.go -destination=mock_gen.go -package=doctext

// Logger is an alias for the chosen project logging library
// which is, currently, logevent. All references in the project
// should be to this name rather than logevent directly.
type Logger = runhttp.Logger

// LogFn extracts a logger from the context.
type LogFn = runhttp.LogFn

// LoggerFromContext is the concrete implementation of LogFn
// used outside of test scenarios.
var LoggerFromContext = runhttp.LoggerFromContext

// Stat is an alias for the chosen project metrics library
// which is, currently, xstats. All references in the project
// should be to this name rather than xstats directly.
type Stat = runhttp.Stat

// StatFn extracts a metrics client from the context.
type StatFn = runhttp.StatFn

// StatFromContext is the concrete implementation of StatFn
// used outside of test scenarios.
var StatFromContext = runhttp.StatFromContext

// Function is an executable lambda function. This extends
// the official lambda SDK concept of a Handler in order to
// also provide the underlying function signature which is
// usually masked when converting any function to a lambda.Handler.
type Function interface {
	lambda.Handler
	Source() interface{}
	// Errors enumerates the error values the function declares itself
	// as able to return. The list is consumed by the mock build modes
	// in order to simulate failure cases on demand.
	Errors() []error
}

// URLParamFn should be accepted by HTTP handlers that need
// to interface with the mux in use in order to extract request
// parameters from the URL. This defines the contract between
// any given mux and a handler so that the two do not need to
// be coupled.
type URLParamFn func(ctx context.Context, name string) string

// Fetcher is a pluggable component that enables different
// loading strategies functions.
type Fetcher interface {
	// Fetch uses some implementation of a loading strategy
	// to fetch the Handler with the given name. If a matching Handler
	// cannot be found then this component must emit a NotFoundError.
	Fetch(ctx context.Context, name string) (Function, error)
}

// ObjectStore writes opaque payloads to a named bucket and key.
// Implementations must treat the body as a single object and either
// store it completely or return an error.
type ObjectStore interface {
	Put(ctx context.Context, bucket string, key string, body io.Reader) error
}

// BlockTypeLine identifies blocks that represent a full line of
// detected text as opposed to individual words or page metadata.
const BlockTypeLine = "LINE"

// Block is a single unit of content recognized by a text detection
// service. The Type value determines how the Text should be
// interpreted.
type Block struct {
	Type string
	Text string
}

// TextDetector runs synchronous text detection against an object
// already resident in an object store. Blocks are returned in the
// order emitted by the detection service.
type TextDetector interface {
	Detect(ctx context.Context, bucket string, key string) ([]Block, error)
}
