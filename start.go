package doctext

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that implements parts of the Lambda API.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but with mocked versions
	// of the lambda functions loaded.
	BuildModeHTTPMock = "http_mock"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
	// BuildModeLambdaMock runs the official lambda server using the lambda
	// SDK but with a mocked version of the loaded function. Using this mode
	// requires the TargetFunction value to be set.
	BuildModeLambdaMock = "lambda_mock"
)

var (
	// BuildMode determines the behavior of the Start method. There
	// are several ways to use this value. The suggested way is through
	// build variables by adding `-ldflags "-X github.com/asecurityteam/doctext.BuildMode=<value>"`
	// to `go build` or `go run` commands. If you want to use environment variables
	// instead then you can set this variable in code before calling Start
	// like `doctext.BuildMode=os.Getenv("MYENVVAR")`.
	//
	// Alternatively, the StartMode() method may be used if you prefer to pass in
	// parameters via code rather than toggling the global setting.
	BuildMode = BuildModeHTTP
	// TargetFunction is used when building in a native lambda mode to select a
	// single function to run. This value can be set in all the same ways as the
	// BuildMode value.
	TargetFunction = ""
	// LambdaStartFn is the method used to hand a function to the official
	// lambda server. It is a variable so that tests are able to intercept
	// the server lifecycle which otherwise has no shutdown mechanism.
	LambdaStartFn = lambda.StartHandler
)

// Start is a replacement for the lambda.Start method that introduces new
// features. By default, this method will start the lambda HTTP API and
// will invoke methods loaded using the given Fetcher.
func Start(ctx context.Context, s settings.Source, f Fetcher) error {
	return StartMode(ctx, s, f, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode and target function.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f)
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTPMock(ctx, s, f)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, f, target)
	case strings.EqualFold(mode, BuildModeLambdaMock):
		return StartLambdaMock(ctx, s, f, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func newHTTPRuntime(ctx context.Context, s settings.Source, f Fetcher, mockMode bool) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		Fetcher:  f,
		MockMode: mockMode,
	}
	router := NewRouter(conf)
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{"doctext"}},
		rtC,
		rt,
	)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, f, false)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartHTTPMock runs the HTTP API with mocked out functions and the
// simulated error endpoint enabled.
func StartHTTPMock(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, &MockingFetcher{Fetcher: f}, true)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the official lambda server with the target function
// loaded. The HTTP API is not available in this mode.
func StartLambda(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	if target == "" {
		return fmt.Errorf("native lambda modes require a target function")
	}
	fn, err := f.Fetch(ctx, target)
	if err != nil {
		return err
	}
	LambdaStartFn(fn)
	return nil
}

// StartLambdaMock runs the official lambda server with a mocked version
// of the target function loaded.
func StartLambdaMock(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	return StartLambda(ctx, s, &MockingFetcher{Fetcher: f}, target)
}
