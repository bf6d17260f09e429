package v1

import (
	"context"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

// GetItem returns a single stored item unmodified.
type GetItem struct {
	Items *handlers.Items
}

// Handle is the lambda entrypoint.
func (h *GetItem) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	item, err := h.Items.Fetch(ctx, handlers.PathID(req))
	if err != nil {
		return handlers.RespondError(err)
	}
	return handlers.Respond(http.StatusOK, item)
}
