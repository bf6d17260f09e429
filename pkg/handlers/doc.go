// Package handlers is a container for the todo item operations and the
// helpers that turn their results into API Gateway proxy responses. The
// versioned lambda entrypoints live in the v1 and v2 sub-packages and share
// the Items operations defined here.
package handlers
