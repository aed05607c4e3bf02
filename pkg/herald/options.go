package herald

// DefaultHerald is the marker sequence used when WithHerald is not given.
const DefaultHerald = "%"

// settings holds construction-time configuration for an Interpolator.
type settings struct {
	herald string
	escape bool
}

// Option configures an Interpolator at construction time.
type Option func(*settings)

// WithHerald sets the marker sequence that signals the start of a
// placeholder. The herald may be any non-empty string and is matched
// literally, case-sensitively.
//
// Default: "%"
//
// Example:
//
//	in, _ := herald.New(herald.WithHerald("!!!"))
func WithHerald(herald string) Option {
	return func(s *settings) {
		s.herald = herald
	}
}

// WithoutEscape disables the herald-literal escape entry. Without it,
// two consecutive heralds are not collapsed; the second herald's
// characters must instead begin a registered key.
//
// Disabling the escape frees the herald string itself for use as an
// ordinary key, and is required before registering the empty key as the
// sole mapping reachable at the root.
//
// Example:
//
//	in, _ := herald.New(herald.WithoutEscape())
func WithoutEscape() Option {
	return func(s *settings) {
		s.escape = false
	}
}
