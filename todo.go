package todolist

import (
	"net/http"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/asecurityteam/todolist/pkg/handlers"
	v1 "github.com/asecurityteam/todolist/pkg/handlers/v1"
	v2 "github.com/asecurityteam/todolist/pkg/handlers/v2"
)

const (
	// FunctionGetItems lists every item.
	FunctionGetItems = "todo-api-get-items-fn"
	// FunctionGetItem reads one item. The unqualified function is the
	// latest version, which marks its responses as V2.
	FunctionGetItem = "todo-api-get-item-fn"
	// FunctionUpsertItem creates or replaces an item.
	FunctionUpsertItem = "todo-api-upsert-item-fn"
	// FunctionDeleteItem removes an item.
	FunctionDeleteItem = "todo-api-delete-item-fn"
	// AliasGetItemV1 pins FunctionGetItem to its first version.
	AliasGetItemV1 = "get-item-v1"
)

// NewFunctions binds the todo API functions to the given store. The
// result is keyed by function name and is suitable for a StaticFetcher.
func NewFunctions(store domain.Store) map[string]Function {
	items := handlers.NewItems(store)
	readErrors := []error{
		domain.MissingIdentifierError{},
		domain.ItemNotFoundError{},
		domain.StoreUnavailableError{},
	}
	return map[string]Function{
		FunctionGetItems: NewFunctionWithErrors(
			(&v1.ListItems{Items: items}).Handle,
			domain.StoreUnavailableError{},
		),
		FunctionGetItem: NewFunctionWithErrors(
			(&v2.GetItem{Items: items}).Handle,
			readErrors...,
		),
		QualifiedName(FunctionGetItem, AliasGetItemV1): NewFunctionWithErrors(
			(&v1.GetItem{Items: items}).Handle,
			readErrors...,
		),
		FunctionUpsertItem: NewFunctionWithErrors(
			(&v1.UpsertItem{Items: items}).Handle,
			readErrors...,
		),
		FunctionDeleteItem: NewFunctionWithErrors(
			(&v1.DeleteItem{Items: items}).Handle,
			readErrors...,
		),
	}
}

// Route binds a REST resource to a function.
type Route struct {
	Method         string
	Pattern        string
	Function       string
	PathParameters []string
}

// TodoRoutes is the REST surface of the todo API.
var TodoRoutes = []Route{
	{Method: http.MethodGet, Pattern: "/todo", Function: FunctionGetItems},
	{Method: http.MethodPost, Pattern: "/todo", Function: FunctionUpsertItem},
	{Method: http.MethodGet, Pattern: "/v1/todo", Function: FunctionGetItems},
	{Method: http.MethodPost, Pattern: "/v1/todo", Function: FunctionUpsertItem},
	{
		Method:         http.MethodGet,
		Pattern:        "/v1/todo/{id}",
		Function:       QualifiedName(FunctionGetItem, AliasGetItemV1),
		PathParameters: []string{handlers.PathParameterID},
	},
	{
		Method:         http.MethodPut,
		Pattern:        "/v1/todo/{id}",
		Function:       FunctionUpsertItem,
		PathParameters: []string{handlers.PathParameterID},
	},
	{
		Method:         http.MethodDelete,
		Pattern:        "/v1/todo/{id}",
		Function:       FunctionDeleteItem,
		PathParameters: []string{handlers.PathParameterID},
	},
	{
		Method:         http.MethodGet,
		Pattern:        "/v2/todo/{id}",
		Function:       FunctionGetItem,
		PathParameters: []string{handlers.PathParameterID},
	},
}
