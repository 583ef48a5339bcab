package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sagarc03/quickserve"
)

// Translator turns a failed request into its JSON error response. It is the
// terminal stage for every failure: handler errors, unmatched routes and
// recovered panics all end here.
type Translator struct {
	devMode bool
}

// NewTranslator returns a Translator. When devMode is true error responses
// carry the diagnostic trace; production deployments must pass false.
func NewTranslator(devMode bool) *Translator {
	return &Translator{devMode: devMode}
}

// DevMode reports whether traces are included in responses.
func (t *Translator) DevMode() bool {
	return t.devMode
}

// Translate maps err to the response body. Status defaults to 500 when the
// error is not a *quickserve.Error or carries no valid error status, and the
// message defaults to "Internal Server Error".
func (t *Translator) Translate(err error) ErrorResponse {
	var apiErr *quickserve.Error
	if !errors.As(err, &apiErr) {
		resp := ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: quickserve.MsgInternal,
		}
		if t.devMode && err != nil {
			resp.Trace = fmt.Sprintf("%+v", err)
		}
		return resp
	}

	resp := ErrorResponse{
		Status:  apiErr.StatusCode(),
		Message: apiErr.Message(),
	}
	if !quickserve.IsErrorStatus(resp.Status) {
		resp.Status = http.StatusInternalServerError
	}
	if resp.Message == "" {
		resp.Message = quickserve.MsgInternal
	}
	if t.devMode {
		resp.Trace = apiErr.Trace()
	}

	return resp
}

// Write translates err and writes exactly one JSON response.
func (t *Translator) Write(w http.ResponseWriter, r *http.Request, err error) {
	resp := t.Translate(err)

	level := slog.LevelDebug
	if resp.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", resp.Status),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.LogAttrs(r.Context(), level, "request error", attrs...)

	if err := WriteJSON(w, resp.Status, resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
