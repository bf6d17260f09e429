package todolist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/asecurityteam/todolist/pkg/handlers"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationTypeError           = "Error"
	invocationErrorTypeHeader     = "X-Error-Type"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
	qualifierParameter            = "Qualifier"
	latestVersion                 = "$LATEST"

	statInvokeFailure = "todo.invoke.failure"
)

// bgContext is used to detach the *http.Request context from the http.Handler
// lifecycle. Typically, the request context is canceled when the hander returns.
// This is problematic when using the request context to share request scoped
// elements, such as the logger or stat client, with background tasks that will
// execute after the handler returns. This resolves that issue by keeping a
// reference to the request context and using it to lookup values but replacing
// all other context.Context methods with the context.Background() implementation.
// The result is a valid context.Context that will not expire when the source
// http.Handler returns but will maintain all context values.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError implements the common Lambda error response
// JSON object that is included as the response body for
// exception cases.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

type invokeFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invoke-failure"`
}

// Invoke implements the API of the same name from the AWS Lambda API.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// The Qualifier query parameter selects a version or alias of the
// function. Anything other than $LATEST is resolved through the Fetcher
// using the qualified name, so aliases such as get-item-v1 must be
// registered under QualifiedName(name, alias).
//
// While the intent is to make this endpoint as similar to the Invoke
// API as possible, there are several features that are not yet
// supported:
//
// -	The "Tail" option for the LogType header does not cause the
//		response to include partial logs.
//
// -	The "Function-Error" header is "Handled" for 4xx results and
//		"Unhandled" for everything else.
//
// In mock mode the additional "Error" invocation type replays one of the
// function's documented errors, selected by name with the X-Error-Type
// header.
type Invoke struct {
	LogFn      LogFn
	StatFn     StatFn
	URLParamFn URLParamFn
	Fetcher    Fetcher
	MockMode   bool
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	version := latestVersion
	if q := r.URL.Query().Get(qualifierParameter); q != "" && q != latestVersion {
		fnName = QualifiedName(fnName, q)
		version = q
	}
	fn, errFn := h.Fetcher.Fetch(r.Context(), fnName)
	switch errFn.(type) {
	case nil:
		break
	case NotFoundError:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	default:
		h.LogFn(r.Context()).Error(invokeFailure{Function: fnName, Reason: errFn.Error()})
		h.StatFn(r.Context()).Count(statInvokeFailure, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse // This is the default value in AWS.
	}
	ctx := r.Context()
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest) // Matches JSON parsing errors for the body
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	w.Header().Set(invocationVersionHeader, version)
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
		return
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() { _, _ = fn.Invoke(ctx, b) }()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := fn.Invoke(ctx, b)
		if errInvoke != nil {
			h.LogFn(ctx).Error(invokeFailure{Function: fnName, Reason: errInvoke.Error()})
			h.StatFn(ctx).Count(statInvokeFailure, 1)
			rb, _ = json.Marshal(responseFromError(errInvoke))
		}
		writeInvocationResult(w, statusFromError(errInvoke), rb)
	case invocationTypeError:
		if !h.MockMode {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(lambdaError{
				Message:    fmt.Sprintf("InvocationType %s is only available in mock mode", fnType),
				Type:       "InvalidParameterValueException",
				StackTrace: errResponseStackTrace,
			})
			return
		}
		errType := r.Header.Get(invocationErrorTypeHeader)
		for _, fnErr := range fn.Errors() {
			if errorTypeName(fnErr) == errType {
				rb, _ := json.Marshal(responseFromError(fnErr))
				writeInvocationResult(w, statusFromError(fnErr), rb)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("error type %s not found for function %s", errType, fnName),
			Type:       "ResourceNotFoundException",
			StackTrace: errResponseStackTrace,
		})
	default:
		w.WriteHeader(http.StatusBadRequest) // Matches the InvalidParameterValueException code
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
		return
	}
}

func writeInvocationResult(w http.ResponseWriter, statusCode int, rb []byte) {
	if statusCode > 299 {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
	}
	if statusCode > 499 {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
	}
	w.WriteHeader(statusCode)
	if len(rb) > 0 {
		_, _ = w.Write(rb)
	}
}

// errResponseStackTrace is used to populate the stackTrace attribute of a Lambda
// error. We don't, currently, extract an actual stack trace so we reuse this
// element each time to avoid recreating an empty slice each time.
var errResponseStackTrace = []string{}

func errorTypeName(err error) string {
	errType := reflect.TypeOf(err)
	if errType.Kind() == reflect.Ptr {
		return errType.Elem().Name()
	}
	return errType.Name()
}

func responseFromError(err error) lambdaError {
	return lambdaError{
		Message:    err.Error(),
		Type:       errorTypeName(err),
		StackTrace: errResponseStackTrace,
	}
}

func statusFromError(err error) int {
	var notFound NotFoundError
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *json.InvalidUTF8Error: // nolint
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalFieldError: // nolint
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	}
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return handlers.StatusFromError(err)
}
