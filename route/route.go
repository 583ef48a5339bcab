package route

import (
	"fmt"
	"net/url"
	"strings"
)

// Params holds the path parameters bound by a match.
type Params map[string]string

// Get returns the value bound to name, or "" when there is none.
func (p Params) Get(name string) string {
	return p[name]
}

// Route is a single table entry.
type Route[H any] struct {
	Method  string
	Pattern string
	Handler H

	segments []string
}

// Match is the result of a successful lookup.
type Match[H any] struct {
	Route  Route[H]
	Params Params
}

// Handler returns the handler of the matched route.
func (m Match[H]) Handler() H {
	return m.Route.Handler
}

// Table is an ordered route table.
type Table[H any] struct {
	routes []Route[H]
	frozen bool
}

// New returns an empty table.
func New[H any]() *Table[H] {
	return &Table[H]{}
}

// Add appends an entry and returns the table for chaining.
// It panics when the table is frozen or the pattern is malformed, the same
// way net/http panics on bad mux registrations.
func (t *Table[H]) Add(method, pattern string, h H) *Table[H] {
	if t.frozen {
		panic(fmt.Sprintf("route: add %s %s: table is frozen", method, pattern))
	}
	if method == "" {
		panic(fmt.Sprintf("route: add %s: empty method", pattern))
	}

	segments, err := parsePattern(pattern)
	if err != nil {
		panic(fmt.Sprintf("route: add %s %s: %v", method, pattern, err))
	}

	t.routes = append(t.routes, Route[H]{
		Method:   method,
		Pattern:  pattern,
		Handler:  h,
		segments: segments,
	})
	return t
}

// Freeze makes the table read-only and returns it.
func (t *Table[H]) Freeze() *Table[H] {
	t.frozen = true
	return t
}

// Frozen reports whether Freeze has been called.
func (t *Table[H]) Frozen() bool {
	return t.frozen
}

// Routes returns a copy of the entries in table order.
func (t *Table[H]) Routes() []Route[H] {
	out := make([]Route[H], len(t.routes))
	copy(out, t.routes)
	return out
}

// Match finds the first entry whose method and pattern match. path is the
// escaped request path (url.URL.EscapedPath); parameter values are unescaped
// before they are returned.
func (t *Table[H]) Match(method, path string) (Match[H], bool) {
	segments := splitPath(path)

	for _, r := range t.routes {
		if r.Method != method {
			continue
		}
		if params, ok := matchSegments(r.segments, segments); ok {
			return Match[H]{Route: r, Params: params}, true
		}
	}

	return Match[H]{}, false
}

func parsePattern(pattern string) ([]string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern must start with '/'")
	}

	segments := splitPath(pattern)
	seen := make(map[string]bool)
	for _, s := range segments {
		if !strings.HasPrefix(s, ":") {
			continue
		}
		name := s[1:]
		if name == "" {
			return nil, fmt.Errorf("empty parameter name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate parameter %q", name)
		}
		seen[name] = true
	}

	return segments, nil
}

// splitPath turns "/a/b/" into ["a", "b"] and "/" or "" into [].
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	var params Params
	for i, ps := range pattern {
		seg := unescape(path[i])

		if strings.HasPrefix(ps, ":") {
			if seg == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params)
			}
			params[ps[1:]] = seg
			continue
		}

		if ps != seg {
			return nil, false
		}
	}

	return params, true
}

func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
