package todolist

import (
	"context"
)

// StaticFetcher is an implementation of the Fetcher that maintains a static mapping
// of names to Function instances. Every function is compiled into the binary and
// runs within the process, sharing the runtime's resources and the single item
// store handle the functions were built with.
//
// Function versions and aliases are plain entries in the map under their qualified
// names (see QualifiedName). Adding a version means rebuilding and redeploying the
// runtime; there is no in-place update.
type StaticFetcher struct {
	// Functions is the underlying static map of function names to executable
	// functions. The keys of the map will be used as the name of the Function.
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NotFoundError{ID: name}
	}
	return h, nil
}
