package glyph

import (
	"maps"
	"slices"
)

// OpenFunc creates a Rasterizer for font data at a pixel size.
type OpenFunc func(data []byte, size int) (Rasterizer, error)

// DefaultBackend is the backend used when none is named.
const DefaultBackend = "ximage"

// backends holds the registered rasterizer backends.
var backends = map[string]OpenFunc{}

// Register makes a backend available under name, replacing any backend
// already registered with that name. Register is meant to be called from
// init functions and is not safe for concurrent use with Open.
func Register(name string, open OpenFunc) {
	backends[name] = open
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return slices.Sorted(maps.Keys(backends))
}

// Open creates a Rasterizer using the named backend. An empty name selects
// DefaultBackend.
func Open(name string, data []byte, size int) (Rasterizer, error) {
	if name == "" {
		name = DefaultBackend
	}
	open, ok := backends[name]
	if !ok {
		return nil, &UnknownBackendError{Name: name}
	}
	return open(data, size)
}
