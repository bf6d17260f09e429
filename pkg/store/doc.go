// Package store contains implementations of the domain.Store interface. Each
// implementation in this package represents a different backing table for
// TodoItems.
//
package store
