package http

import (
	"log/slog"
	"net/http"

	"github.com/sagarc03/quickserve"
	"github.com/sagarc03/quickserve/route"
)

// Dispatcher serves requests from a frozen route table. A request either
// matches an entry and runs its handler, or it does not and the not-found
// Error goes straight to the translator. Failures from a handler are
// forwarded unchanged; nothing is retried.
type Dispatcher struct {
	table      *route.Table[HandlerFunc]
	translator *Translator
}

// NewDispatcher returns a Dispatcher over table. The table is frozen if it
// was not already.
func NewDispatcher(table *route.Table[HandlerFunc], translator *Translator) *Dispatcher {
	return &Dispatcher{
		table:      table.Freeze(),
		translator: translator,
	}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m, ok := d.table.Match(r.Method, r.URL.EscapedPath())
	if !ok {
		d.translator.Write(w, r, quickserve.NotFound())
		return
	}

	res, err := m.Handler()(&Request{Request: r, Params: m.Params})
	if err != nil {
		d.translator.Write(w, r, err)
		return
	}

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}

	if err := WriteJSON(w, status, res.Body); err != nil {
		slog.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}
