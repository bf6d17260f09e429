package v1

import (
	"context"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

const messageUpserted = "Todo Item created/updated successfully!"

// UpsertItem creates or replaces an item. The entrypoint decides which: a
// POST to the collection creates a new item and any other method updates
// the item named in the path.
type UpsertItem struct {
	Items *handlers.Items
}

// Handle is the lambda entrypoint.
func (h *UpsertItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	create := req.HTTPMethod == http.MethodPost
	id := handlers.PathID(req)
	if !create && id == "" {
		return handlers.RespondError(domain.MissingIdentifierError{})
	}
	in, err := handlers.ParseInput(req)
	if err != nil {
		return handlers.RespondError(err)
	}
	var item domain.TodoItem
	if create {
		item, err = h.Items.Create(ctx, in)
	} else {
		item, err = h.Items.Update(ctx, id, in)
	}
	if err != nil {
		return handlers.RespondError(err)
	}
	return handlers.Respond(http.StatusOK, handlers.Message{Message: messageUpserted, ID: item.ID})
}
