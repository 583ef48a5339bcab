package http

import (
	"net/http"

	"github.com/sagarc03/quickserve/route"
)

// Routes returns the frozen route table of the API.
func Routes() *route.Table[HandlerFunc] {
	return route.New[HandlerFunc]().
		Add(http.MethodGet, "/api/health", HandleHealth).
		Add(http.MethodPost, "/api/example", HandleCreateItem).
		Add(http.MethodGet, "/api/example/:id", HandleGetItem).
		Freeze()
}
