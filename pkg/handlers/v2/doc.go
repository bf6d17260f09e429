// Package v2 contains the lambda entrypoints of the version 2 todo API. Only
// the single item read differs from version 1: its response carries a
// Version marker next to the stored fields.
package v2
