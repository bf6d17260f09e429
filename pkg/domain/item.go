package domain

import (
	"context"
)

// TimestampFormat is the textual layout of TodoItem.UpdatedAt. It matches
// the RFC 1123 form that browsers produce for Date.prototype.toUTCString.
const TimestampFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// TodoItem is the only entity managed by the service. The ID is the sole
// key of the backing table and is never changed once an item is created.
type TodoItem struct {
	ID          string `json:"id" dynamodbav:"id"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	// UpdatedAt is recorded on every write and never read by business logic.
	UpdatedAt string `json:"updated_at" dynamodbav:"updated_at"`
}

// ItemInput is the caller supplied portion of a TodoItem on create or update.
type ItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

//go:generate mockgen -destination ../handlers/mock_store_test.go -package handlers github.com/asecurityteam/todolist/pkg/domain Store

// Store is the contract with the key-value table holding TodoItems.
//
// Implementations report every failure to reach or use the table as a
// StoreUnavailableError and must not retry internally.
type Store interface {
	// Get performs a point lookup. A missing item is reported through the
	// boolean rather than an error.
	Get(ctx context.Context, id string) (TodoItem, bool, error)
	// Put inserts or fully replaces the item with the same ID.
	Put(ctx context.Context, item TodoItem) error
	// Delete removes the item with the given ID. Deleting a missing item
	// succeeds.
	Delete(ctx context.Context, id string) error
	// Scan returns every item in the table in no particular order.
	Scan(ctx context.Context) ([]TodoItem, error)
}
