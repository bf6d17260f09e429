package v1

import (
	"context"
	"net/http"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/asecurityteam/todolist/pkg/handlers"
	"github.com/aws/aws-lambda-go/events"
)

// ItemList is the body returned by ListItems.
type ItemList struct {
	Items []domain.TodoItem `json:"Items"`
	Count int               `json:"Count"`
}

// ListItems returns every stored item.
type ListItems struct {
	Items *handlers.Items
}

// Handle is the lambda entrypoint.
func (h *ListItems) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.Items.List(ctx)
	if err != nil {
		return handlers.RespondError(err)
	}
	return handlers.Respond(http.StatusOK, ItemList{Items: items, Count: len(items)})
}
