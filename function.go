package doctext

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// LambdaFunction is a small wrapper around the lambda.Handler
// that preserves the original signature of the function for later
// retrieval.
type LambdaFunction struct {
	lambda.Handler
	source interface{}
	errors []error
}

// Source returns the original function signature.
func (f *LambdaFunction) Source() interface{} {
	return f.source
}

// Errors returns the list of errors the function declares itself as
// able to return. This is only populated if the function was
// constructed using the NewFunctionWithErrors constructor.
func (f *LambdaFunction) Errors() []error {
	return f.errors
}

// NewFunctionWithErrors allows for documenting the various error types
// that can be returned by the function. The declared errors become
// available for simulation when running in the mock build modes.
func NewFunctionWithErrors(v interface{}, errors ...error) Function {
	return &LambdaFunction{
		Handler: lambda.NewHandler(v),
		source:  v,
		errors:  errors,
	}
}

// NewFunction is a replacement for lambda.NewHandler that returns
// a Function.
func NewFunction(v interface{}) Function {
	return &LambdaFunction{
		Handler: lambda.NewHandler(v),
		source:  v,
	}
}
