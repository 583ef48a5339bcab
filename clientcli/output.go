package clientcli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sagarc03/quickserve"
)

// Formatter formats results for output.
type Formatter interface {
	FormatHealth(w io.Writer, h *quickserve.Health) error
	FormatCreated(w io.Writer, p *quickserve.Payload) error
	FormatItem(w io.Writer, item *quickserve.Item) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatHealth formats a health response as human-readable text.
func (f *HumanFormatter) FormatHealth(w io.Writer, h *quickserve.Health) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, h.Status)
		return nil
	}
	_, _ = fmt.Fprintf(w, "Status: %s\n", h.Status)
	return nil
}

// FormatCreated formats an echoed payload as human-readable text.
func (f *HumanFormatter) FormatCreated(w io.Writer, p *quickserve.Payload) error {
	if f.Quiet {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Created: %s\n", p.Name)
	if p.ID != nil {
		_, _ = fmt.Fprintf(w, "  ID: %d\n", *p.ID)
	}
	return nil
}

// FormatItem formats an item as human-readable text.
func (f *HumanFormatter) FormatItem(w io.Writer, item *quickserve.Item) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, item.Name)
		return nil
	}
	_, _ = fmt.Fprintf(w, "ID:   %d\n", item.ID)
	_, _ = fmt.Fprintf(w, "Name: %s\n", item.Name)
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatHealth formats a health response as JSON.
func (f *JSONFormatter) FormatHealth(w io.Writer, h *quickserve.Health) error {
	return writeJSON(w, h)
}

// FormatCreated formats an echoed payload as JSON.
func (f *JSONFormatter) FormatCreated(w io.Writer, p *quickserve.Payload) error {
	return writeJSON(w, p)
}

// FormatItem formats an item as JSON.
func (f *JSONFormatter) FormatItem(w io.Writer, item *quickserve.Item) error {
	return writeJSON(w, item)
}

// FormatError formats an error as JSON. Server errors keep their status.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error  string `json:"error"`
		Status int    `json:"status,omitempty"`
	}{
		Error: err.Error(),
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		output.Error = apiErr.Message
		output.Status = apiErr.StatusCode
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
