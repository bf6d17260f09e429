package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

const (
	corsOriginHeader  = "Access-Control-Allow-Origin"
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"

	// PathParameterID is the name of the path parameter holding the item ID.
	PathParameterID = "id"
)

const (
	messageMissingIdentifier = "Id is empty."
	messageItemNotFound      = "Todo Item not found."
	messageInvalidBody       = "Invalid request body."
	messageInternal          = "Internal server error."
)

// Message is the JSON body of confirmations and failures.
type Message struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Respond encodes the body as the JSON payload of a proxy response. Every
// response allows cross origin reads.
func Respond(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			corsOriginHeader:  "*",
			contentTypeHeader: contentTypeJSON,
		},
		Body: string(b),
	}, nil
}

// RespondError renders an operation failure as a proxy response.
func RespondError(err error) (events.APIGatewayProxyResponse, error) {
	status := StatusFromError(err)
	return Respond(status, Message{Message: messageFromError(err, status)})
}

// StatusFromError maps an error kind to the HTTP status reported to callers.
func StatusFromError(err error) int {
	var missing domain.MissingIdentifierError
	var notFound domain.ItemNotFoundError
	var syntax *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &missing), errors.As(err, &syntax), errors.As(err, &typeErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func messageFromError(err error, status int) string {
	var missing domain.MissingIdentifierError
	switch {
	case errors.As(err, &missing):
		return messageMissingIdentifier
	case status == http.StatusBadRequest:
		return messageInvalidBody
	case status == http.StatusNotFound:
		return messageItemNotFound
	default:
		return messageInternal
	}
}

// PathID extracts the item ID from the request path parameters. A missing
// parameter yields an empty string.
func PathID(req events.APIGatewayProxyRequest) string {
	return req.PathParameters[PathParameterID]
}

// ParseInput decodes the request body into the caller supplied item fields.
func ParseInput(req events.APIGatewayProxyRequest) (domain.ItemInput, error) {
	var in domain.ItemInput
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return domain.ItemInput{}, err
	}
	return in, nil
}
