package todolist

import (
	"context"
	"net/http"
	"reflect"

	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

var (
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
	proxyResponseType = reflect.TypeOf(events.APIGatewayProxyResponse{})
)

// MockingFetcher sources original functions from another Fetcher
// and mocks out the results. Mocked functions never touch the item
// store. A function returning an API Gateway proxy response answers
// 200 with an empty JSON object and the usual response headers. Any
// other return type is answered with its zero value. The documented
// errors of the original stay available for Error invocations.
type MockingFetcher struct {
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and mocks the results.
func (f *MockingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return mockFunction(r), nil
}

func mockFunction(f Function) Function {
	// The lambda SDK already validated the signature: at most two
	// results and, when present, the last one is an error.
	t := reflect.TypeOf(f.Source())
	results := make([]reflect.Value, 0, t.NumOut())
	if t.NumOut() == 2 {
		results = append(results, mockResult(t.Out(0)))
	}
	if t.NumOut() > 0 {
		results = append(results, reflect.Zero(errorType))
	}
	newFn := reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value { return results })
	return NewFunctionWithErrors(newFn.Interface(), f.Errors()...)
}

func mockResult(t reflect.Type) reflect.Value {
	if t == proxyResponseType {
		resp, err := handlers.Respond(http.StatusOK, struct{}{})
		if err == nil {
			return reflect.ValueOf(resp)
		}
	}
	return reflect.Zero(t)
}
