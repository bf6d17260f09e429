// Package domain is a container of the todo item types and the Store
// interface shared by the handlers and the store implementations.
//
// This package is also the container for all domain errors leveraged by the
// service. Each error here represents a condition that the handlers must
// report to callers: a missing identifier, an unknown item, or a backing table
// that could not complete an operation.
//
// Generally speaking, this package contains no executable code. The notable
// exception is the set of domain error types which are required to define a
// corresponding Error() method and, as a result, have tests.
package domain
