package handlers

import (
	"context"
	"time"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/google/uuid"
)

const (
	statItemCreated  = "todo.item.created"
	statItemUpdated  = "todo.item.updated"
	statItemDeleted  = "todo.item.deleted"
	statItemNotFound = "todo.item.notfound"
	statStoreError   = "todo.store.error"
)

// Items implements the todo item operations on top of a domain.Store. It
// holds no state between calls.
type Items struct {
	Store  domain.Store
	LogFn  domain.LogFn
	StatFn domain.StatFn
	// NewID generates the identifier of created items.
	NewID func() string
	// Now is the clock used to stamp UpdatedAt.
	Now func() time.Time
}

// NewItems binds the operations to the given store using the default
// logging, metrics, identifier and clock sources.
func NewItems(store domain.Store) *Items {
	return &Items{
		Store:  store,
		LogFn:  runhttp.LoggerFromContext,
		StatFn: runhttp.StatFromContext,
		NewID:  uuid.NewString,
		Now:    time.Now,
	}
}

// List returns every stored item in no particular order.
func (h *Items) List(ctx context.Context) ([]domain.TodoItem, error) {
	items, err := h.Store.Scan(ctx)
	if err != nil {
		h.reportStoreFailure(ctx, err)
		return nil, err
	}
	return items, nil
}

// Fetch is the read path shared by every version of GetItem.
func (h *Items) Fetch(ctx context.Context, id string) (domain.TodoItem, error) {
	if id == "" {
		return domain.TodoItem{}, domain.MissingIdentifierError{}
	}
	item, found, err := h.Store.Get(ctx, id)
	if err != nil {
		h.reportStoreFailure(ctx, err)
		return domain.TodoItem{}, err
	}
	if !found {
		h.LogFn(ctx).Info(itemNotFound{ID: id})
		h.StatFn(ctx).Count(statItemNotFound, 1)
		return domain.TodoItem{}, domain.ItemNotFoundError{ID: id}
	}
	return item, nil
}

// Create writes a new item under a freshly generated identifier.
func (h *Items) Create(ctx context.Context, in domain.ItemInput) (domain.TodoItem, error) {
	return h.write(ctx, h.NewID(), in, true)
}

// Update fully replaces an existing item. Nothing is written when the item
// does not exist.
func (h *Items) Update(ctx context.Context, id string, in domain.ItemInput) (domain.TodoItem, error) {
	if _, err := h.Fetch(ctx, id); err != nil {
		return domain.TodoItem{}, err
	}
	return h.write(ctx, id, in, false)
}

// Delete removes an existing item. Deleting a missing item is reported as
// ItemNotFoundError rather than succeeding silently.
func (h *Items) Delete(ctx context.Context, id string) error {
	if _, err := h.Fetch(ctx, id); err != nil {
		return err
	}
	if err := h.Store.Delete(ctx, id); err != nil {
		h.reportStoreFailure(ctx, err)
		return err
	}
	h.LogFn(ctx).Info(itemDeleted{ID: id})
	h.StatFn(ctx).Count(statItemDeleted, 1)
	return nil
}

func (h *Items) write(ctx context.Context, id string, in domain.ItemInput, created bool) (domain.TodoItem, error) {
	item := domain.TodoItem{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		UpdatedAt:   h.Now().UTC().Format(domain.TimestampFormat),
	}
	if err := h.Store.Put(ctx, item); err != nil {
		h.reportStoreFailure(ctx, err)
		return domain.TodoItem{}, err
	}
	h.LogFn(ctx).Info(itemWritten{ID: id, Created: created})
	stat := statItemUpdated
	if created {
		stat = statItemCreated
	}
	h.StatFn(ctx).Count(stat, 1)
	return item, nil
}

func (h *Items) reportStoreFailure(ctx context.Context, err error) {
	h.LogFn(ctx).Error(storeFailure{Reason: err.Error()})
	h.StatFn(ctx).Count(statStoreError, 1)
}
