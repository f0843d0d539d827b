package net

import (
	"net/http"

	perr "modhook/internal/platform/errors"
)

// Wire is the response body of the read API under /api/v1
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply builds an envelope. A non nil err sets the status from its code and
// replaces data with the error message; otherwise a zero status means 200
func Reply(status int, data any, err error, reqID string) Wire {
	out := Wire{RequestID: reqID, Data: data}
	if err != nil {
		w := perr.WireFrom(err)
		status = perr.HTTPStatus(err)
		out.Code, out.Error, out.Data = w.Code, w.Message, nil
	}
	if status == 0 {
		status = http.StatusOK
	}
	out.StatusCode, out.Status = status, http.StatusText(status)
	return out
}
