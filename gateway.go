package todolist

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

const statIntegrationFailure = "todo.integration.failure"

// integrationFailureBody is what API Gateway answers when the
// backing function cannot produce a proxy response.
var integrationFailureBody = []byte(`{"message":"Internal server error"}`)

type integrationFailure struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=integration-failure"`
}

// Integration is a REST resource backed by a Function. Each request is
// converted into an API Gateway proxy event, the function is invoked
// with it, and the proxy response the function returns is written back
// to the client.
type Integration struct {
	LogFn      LogFn
	StatFn     StatFn
	URLParamFn URLParamFn
	Fetcher    Fetcher
	// Function is the, possibly qualified, name of the target function.
	Function string
	// Resource is the route template reported to the function, such as
	// /v1/todo/{id}.
	Resource string
	// PathParameters names the route parameters forwarded to the function.
	PathParameters []string
}

func (h *Integration) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	payload, err := json.Marshal(h.event(r, body))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	fn, err := h.Fetcher.Fetch(ctx, h.Function)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := fn.Invoke(ctx, payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var resp events.APIGatewayProxyResponse
	if err = json.Unmarshal(out, &resp); err != nil {
		h.fail(w, r, err)
		return
	}
	if http.StatusText(resp.StatusCode) == "" {
		h.fail(w, r, fmt.Errorf("malformed proxy response: status code %d", resp.StatusCode))
		return
	}
	respBody := []byte(resp.Body)
	if resp.IsBase64Encoded {
		if respBody, err = base64.StdEncoding.DecodeString(resp.Body); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(respBody)
}

func (h *Integration) event(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	var params map[string]string
	for _, name := range h.PathParameters {
		v := h.URLParamFn(r.Context(), name)
		if v == "" {
			continue
		}
		if params == nil {
			params = make(map[string]string, len(h.PathParameters))
		}
		params[name] = v
	}
	query := r.URL.Query()
	return events.APIGatewayProxyRequest{
		Resource:                        h.Resource,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         firstValues(r.Header),
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           firstValues(query),
		MultiValueQueryStringParameters: query,
		PathParameters:                  params,
		Body:                            string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:    uuid.NewString(),
			ResourcePath: h.Resource,
			HTTPMethod:   r.Method,
			Path:         r.URL.Path,
		},
	}
}

func (h *Integration) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.LogFn(r.Context()).Error(integrationFailure{Function: h.Function, Reason: err.Error()})
	h.StatFn(r.Context()).Count(statIntegrationFailure, 1)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = w.Write(integrationFailureBody)
}

func firstValues(values map[string][]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
