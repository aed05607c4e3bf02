// Package catalog provides named template storage and rendering.
//
// A Catalog pairs a Store of raw template texts with an
// herald.Interpolator: templates are saved once under a name and
// rendered on demand, with logging, metrics, and tracing emitted per
// render. Two stores are provided: MemoryStore for tests and
// short-lived processes, and SQLiteStore for persistence.
package catalog

import (
	"errors"
	"time"
)

// Store persists named template texts.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores a template under a name.
	// Overwrites if a template with that name already exists.
	Put(name, text string) error

	// Get retrieves a template's text.
	// Returns ErrNotFound if no template has that name.
	Get(name string) (string, error)

	// List returns metadata for all templates, ordered by name.
	// Returns an empty slice (not an error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a template.
	// Returns nil if the template doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides template metadata without loading the full text.
type Info struct {
	Name      string
	UpdatedAt time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a template doesn't exist.
	ErrNotFound = errors.New("template not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("template store closed")
)
