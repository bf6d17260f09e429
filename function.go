package todolist

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

// Errors returns the documented failures of the function. This is only
// populated if the function was constructed using NewFunctionWithErrors.
func (f *LambdaFunction) Errors() []error {
	return f.errors
}

// NewFunctionWithErrors documents the error values a function can produce
// alongside the function itself. The http_mock build mode can replay them
// on request.
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
	return NewFunctionWithErrors(v)
}
