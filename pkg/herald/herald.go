package herald

import "sort"

// Interpolator replaces registered placeholders in text.
//
// Create with New() and configure with Option functions. Registration
// follows a build-then-use lifecycle: once all keys are registered, an
// Interpolator is safe for concurrent Interpolate calls.
type Interpolator struct {
	herald   string
	root     node
	required map[string]struct{}
}

// New creates a new Interpolator with the given options.
//
// Default configuration:
//   - Herald: "%" (DefaultHerald)
//   - Escape: enabled (two consecutive heralds emit one literal herald)
//
// Returns ErrEmptyHerald if WithHerald was given an empty string.
//
// Example:
//
//	in, err := herald.New(
//	    herald.WithHerald("$"),
//	    herald.WithoutEscape(),
//	)
func New(opts ...Option) (*Interpolator, error) {
	cfg := settings{herald: DefaultHerald, escape: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.herald == "" {
		return nil, ErrEmptyHerald
	}

	in := &Interpolator{
		herald:   cfg.herald,
		required: make(map[string]struct{}),
	}
	if cfg.escape {
		// The escape is an ordinary registry entry: the herald, as a
		// key, maps to itself. It participates in conflict detection
		// like any other key, so registering a key equal to the herald
		// later fails as a duplicate rather than silently overriding
		// the escape.
		in.root = newChain(cfg.herald, leaf(cfg.herald))
	}
	return in, nil
}

// Register adds placeholder-to-replacement mappings to the registry.
//
// Registration fails with a DuplicateKeyError if a key is already
// registered, or an AmbiguousKeysError if any key would become a strict
// prefix of another registered key. The whole call is atomic: if any
// entry conflicts, no entry from the call is registered and the
// registry is exactly as it was before.
//
// Keys may be empty; an empty key resolves immediately after a herald
// with zero characters consumed. Replacement values may be empty and
// may contain herald characters, which are emitted verbatim and never
// re-scanned.
func (in *Interpolator) Register(pairs map[string]string) error {
	root := in.root
	for key, replacement := range pairs {
		merged, err := merge(root, newChain(key, leaf(replacement)), "")
		if err != nil {
			return err
		}
		root = merged
	}
	in.root = root
	return nil
}

// Require marks keys as mandatory: every Interpolate call must resolve
// each of them at least once or fail with a MissingKeysError.
//
// Keys are not validated against the registry; requiring an
// unregistered key makes every Interpolate call fail. Returns the
// interpolator for chaining.
func (in *Interpolator) Require(keys ...string) *Interpolator {
	for _, k := range keys {
		in.required[k] = struct{}{}
	}
	return in
}

// Herald returns the marker sequence this interpolator scans for.
func (in *Interpolator) Herald() string {
	return in.herald
}

// Keys returns all registered placeholder keys in lexicographic order,
// including the herald-escape entry when escaping is enabled.
func (in *Interpolator) Keys() []string {
	keys := collectKeys(in.root, "", nil)
	sort.Strings(keys)
	return keys
}

// Required returns the required keys in lexicographic order.
func (in *Interpolator) Required() []string {
	keys := make([]string, 0, len(in.required))
	for k := range in.required {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
