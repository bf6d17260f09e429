// Package v1 contains the lambda entrypoints of the version 1 todo API. Every
// entrypoint accepts an API Gateway proxy event and returns a proxy response.
// Items are returned exactly as they are stored.
//
package v1
