// Package httpkit re-exports the platform http seam for modules and adds mounting helpers
package httpkit

import (
	"net/http"

	phttp "modhook/internal/platform/net/http"
)

type (
	// Envelope is the read API response body
	Envelope = phttp.Envelope

	// Response is a return-style handler result
	Response = phttp.Response

	// Handler is the platform handler func
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router

	// Result is the webhook response body
	Result = phttp.Result
)

// Call adapts a read handler; its result or error is written as an envelope
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Serve(fn)
}

// Get mounts a GET route whose result is wrapped in the read envelope
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, fn)
}
