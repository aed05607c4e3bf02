package herald

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for interpolator construction.
var (
	// ErrEmptyHerald indicates New() was called with an empty herald string.
	ErrEmptyHerald = errors.New("herald must not be empty")
)

// DuplicateKeyError indicates a placeholder key was registered twice.
type DuplicateKeyError struct {
	// Key is the placeholder key that already exists in the registry.
	Key string
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate placeholder %q", e.Key)
}

// AmbiguousKeysError indicates one registered key is a strict prefix of
// another, which would make placeholder resolution ambiguous.
type AmbiguousKeysError struct {
	// Prefix is the shorter of the two conflicting keys.
	Prefix string
	// Key is the longer key that Prefix is a strict prefix of.
	Key string
}

// Error implements the error interface.
func (e *AmbiguousKeysError) Error() string {
	return fmt.Sprintf("ambiguous placeholders: %q is a prefix of %q", e.Prefix, e.Key)
}

// InvalidPlaceholderError indicates the text following a herald does not
// match any registered key.
type InvalidPlaceholderError struct {
	// Herald is the interpolator's marker sequence.
	Herald string
	// Partial is the text consumed after the herald, up to and including
	// the first character that matched no registered key.
	Partial string
}

// Error implements the error interface.
func (e *InvalidPlaceholderError) Error() string {
	return fmt.Sprintf("invalid placeholder %q", e.Herald+e.Partial)
}

// IncompletePlaceholderError indicates the input ended while a
// placeholder was still being matched.
type IncompletePlaceholderError struct {
	// Herald is the interpolator's marker sequence.
	Herald string
	// Partial is the text consumed after the herald before input ran out.
	Partial string
}

// Error implements the error interface.
func (e *IncompletePlaceholderError) Error() string {
	return fmt.Sprintf("incomplete placeholder %q at end of input", e.Herald+e.Partial)
}

// MissingKeysError indicates an Interpolate call completed without
// resolving one or more required placeholder keys.
type MissingKeysError struct {
	// Herald is the interpolator's marker sequence, used to render keys
	// in the message the way they would appear in input.
	Herald string
	// Keys lists the unresolved required keys in lexicographic order.
	Keys []string
}

// Error implements the error interface.
func (e *MissingKeysError) Error() string {
	names := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		names[i] = e.Herald + k
	}
	if len(names) == 1 {
		return fmt.Sprintf("required placeholder unused: %s", names[0])
	}
	return fmt.Sprintf("required placeholders unused: %s", strings.Join(names, ", "))
}
