// Package http provides the server, router facade and JSON writers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "modhook/internal/platform/net"
)

// Envelope is the response body of the read API
type Envelope = pnet.Wire

// Response lets a read handler choose the status or add headers.
// A Body that is an error is written as an error envelope
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Reply folds a read handler's result into a Response. out may already be one
func Reply(out any, err error) Response {
	if err != nil {
		return Response{Body: err}
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return Response{Status: stdhttp.StatusOK, Body: out}
}

// Serve adapts a read handler to net/http, enveloping whatever it returns
func Serve(fn func(*stdhttp.Request) (any, error)) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		Reply(fn(r)).write(w, r)
	}
}

// GetJSON mounts fn as an enveloped GET route
func GetJSON(r Router, path string, fn func(*stdhttp.Request) (any, error)) {
	r.Get(path, Serve(fn))
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	body, err := resp.Body, error(nil)
	if e, ok := body.(error); ok {
		body, err = nil, e
	}
	env := pnet.Reply(resp.Status, body, err, pnet.RequestID(r.Context()))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}
