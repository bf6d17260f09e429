package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

// DeleteItem removes the item named in the path.
type DeleteItem struct {
	Items *handlers.Items
}

// Handle is the lambda entrypoint.
func (h *DeleteItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := handlers.PathID(req)
	if err := h.Items.Delete(ctx, id); err != nil {
		return handlers.RespondError(err)
	}
	return handlers.Respond(http.StatusOK, handlers.Message{
		Message: fmt.Sprintf("Todo item %s deleted successfully.", id),
		ID:      id,
	})
}
