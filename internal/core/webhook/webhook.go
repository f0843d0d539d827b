// Package webhook normalizes inbound webhook bodies into a single event record
package webhook

import (
	"bytes"
	"encoding/base64"
	"mime"
	"net/url"
	"strings"

	"modhook/internal/adapters/github"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/net/http/bind"
)

// Event kinds the pipeline knows about
const (
	KindPing   = "ping"
	KindCreate = "create"
	KindPush   = "push"
)

// Encoding is how the body was wrapped by the sender
type Encoding uint8

const (
	// EncodingJSON is a raw JSON document
	EncodingJSON Encoding = iota
	// EncodingForm is base64 of a form body whose payload field holds the JSON
	EncodingForm
)

func (e Encoding) String() string {
	if e == EncodingForm {
		return "form"
	}
	return "json"
}

// EncodingOf picks the variant from a Content-Type header value.
// Anything that is not url form encoded is treated as JSON
func EncodingOf(contentType string) Encoding {
	mt, _, err := mime.ParseMediaType(contentType)
	if err == nil && mt == "application/x-www-form-urlencoded" {
		return EncodingForm
	}
	return EncodingJSON
}

// Event is the canonical record handed to the registration pipeline
type Event struct {
	Kind        string
	Repository  string // owner/name as sent
	Description string
	Stars       int

	// tag events only
	Ref     string
	RefType string
}

// ErrMalformedPayload is the user facing failure for any undecodable body
var ErrMalformedPayload = perr.New(perr.ErrorCodeJSON, "malformed payload")

func malformed(cause error) error {
	return perr.Wrap(cause, perr.ErrorCodeJSON, ErrMalformedPayload.Error())
}

// IsMalformed reports whether err came from Decode
func IsMalformed(err error) bool { return perr.IsCode(err, perr.ErrorCodeJSON) }

// Decode turns body into an Event of the given kind
func Decode(kind string, enc Encoding, body []byte) (Event, error) {
	raw := body
	if enc == EncodingForm {
		var err error
		if raw, err = unwrapForm(body); err != nil {
			return Event{}, malformed(err)
		}
	}

	p, err := bind.DecodeJSON[github.Payload](bytes.NewReader(raw))
	if err != nil {
		return Event{}, malformed(err)
	}
	if err := bind.Struct(p); err != nil {
		return Event{}, malformed(err)
	}

	return Event{
		Kind:        kind,
		Repository:  p.Repository.FullName,
		Description: p.Repository.DescriptionOrEmpty(),
		Stars:       p.Repository.Stargazers,
		Ref:         p.Ref,
		RefType:     p.RefType,
	}, nil
}

// unwrapForm base64 decodes body, form decodes it and returns the payload field
func unwrapForm(body []byte) ([]byte, error) {
	dec, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "base64")
	}
	vals, err := url.ParseQuery(string(dec))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "form")
	}
	if !vals.Has("payload") {
		return nil, perr.JSONErrf("form has no payload field")
	}
	return []byte(vals.Get("payload")), nil
}
