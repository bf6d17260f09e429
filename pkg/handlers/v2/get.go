package v2

import (
	"context"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

// VersionMarker tags responses produced by this API version. It is never
// persisted.
const VersionMarker = "V2"

// Item is the version 2 projection of a stored item.
type Item struct {
	domain.TodoItem
	Version string `json:"Version"`
}

// NewItem projects a stored item into the version 2 shape.
func NewItem(item domain.TodoItem) Item {
	return Item{TodoItem: item, Version: VersionMarker}
}

// GetItem returns a single stored item with the version marker attached.
type GetItem struct {
	Items *handlers.Items
}

// Handle is the lambda entrypoint.
func (h *GetItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	item, err := h.Items.Fetch(ctx, handlers.PathID(req))
	if err != nil {
		return handlers.RespondError(err)
	}
	return handlers.Respond(http.StatusOK, NewItem(item))
}
