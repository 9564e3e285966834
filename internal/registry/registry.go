// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the platform
// to discover playable board sizes without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes one registered way to set up a match.
type Variant struct {
	// ID is a unique identifier (e.g., "classic"). Used for CLI commands
	// and match storage.
	ID string

	// Title is a human-readable name for display (e.g., "Classic 8x8").
	Title string

	// BoardSize is the side length of the board. Must satisfy the board
	// package's size rules (even, greater than 4).
	BoardSize int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry. Typically called from an init()
// function. Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by board size then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BoardSize != out[j].BoardSize {
			return out[i].BoardSize < out[j].BoardSize
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}
