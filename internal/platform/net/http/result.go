package http

import (
	"encoding/json"
	stdhttp "net/http"

	"modhook/internal/platform/logger"
)

// Result is the body every webhook response carries.
// Exactly one of Data, Error and Info is set
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Info    string `json:"info,omitempty"`
}

// Succeeded is a successful result carrying data
func Succeeded(data any) Result { return Result{Success: true, Data: data} }

// Failed is an unsuccessful result carrying a user facing message
func Failed(msg string) Result { return Result{Error: msg} }

// Ignored is an unsuccessful but harmless result carrying an informational note
func Ignored(info string) Result { return Result{Info: info} }

// WriteResult writes res with Content-Type exactly application/json
func WriteResult(w stdhttp.ResponseWriter, status int, res Result) {
	body, err := json.Marshal(res)
	if err != nil {
		logger.Named("http").Error().Err(err).Msg("encode webhook result")
		body = []byte(`{"success":false,"error":"internal server error"}`)
		status = stdhttp.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
