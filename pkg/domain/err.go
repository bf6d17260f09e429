package domain

import "fmt"

// MissingIdentifierError is returned when an operation that targets a single
// item is invoked without an item ID.
type MissingIdentifierError struct{}

func (e MissingIdentifierError) Error() string {
	return "item id is empty"
}

// ItemNotFoundError represents a failed lookup for a TodoItem.
type ItemNotFoundError struct {
	// ID is the key used when looking for the item.
	ID string
}

func (e ItemNotFoundError) Error() string {
	return fmt.Sprintf("item (%s) not found", e.ID)
}

// StoreUnavailableError is returned when the backing table could not be
// reached or rejected an operation.
type StoreUnavailableError struct {
	// Op names the store operation that failed.
	Op     string
	Reason error
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("item store unavailable during %s: %v", e.Op, e.Reason)
}

func (e StoreUnavailableError) Unwrap() error {
	return e.Reason
}
