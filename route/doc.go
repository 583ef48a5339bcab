// Package route holds the static route table and the pure matching function
// the dispatcher uses to pick a handler for a request.
//
// A Table is an ordered list of (method, pattern, handler) entries. Patterns
// are slash separated; a segment starting with ':' binds a path parameter:
//
//	t := route.New[http.HandlerFunc]().
//	    Add("GET", "/api/health", health).
//	    Add("GET", "/api/example/:id", getItem).
//	    Freeze()
//
//	m, ok := t.Match("GET", "/api/example/42")
//	// ok == true, m.Params.Get("id") == "42"
//
// Matching compares the method exactly and the path segment by segment. The
// first entry that matches wins. A single trailing slash on the request path is
// ignored. There are no wildcards or regular expressions.
//
// Tables are built once at startup. After Freeze they are read-only and safe
// for concurrent use.
package route
