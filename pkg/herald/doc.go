/*
Package herald provides placeholder interpolation for strings.

# Overview

herald replaces placeholder tokens in text with registered replacement
values. A placeholder is a marker sequence (the "herald", "%" by default)
followed by a registered key:

	in, _ := herald.New()
	in.Register(map[string]string{"name": "World"})
	result, _ := in.Interpolate("Hello %name")
	// result: "Hello World"

Registered keys are held in a prefix tree, and a single left-to-right
pass over the input resolves each herald occurrence to the unique key
reachable from it. Registration rejects key sets where one key is a
strict prefix of another, so resolution is never ambiguous.

# Escaping

Unless disabled with WithoutEscape, the herald itself is registered as a
key mapping to itself. Two consecutive heralds therefore collapse to one
literal herald in the output:

	result, _ := in.Interpolate("100%% done")
	// result: "100% done"

There is no special counting logic behind this: the escape is an
ordinary registry entry, and the scanner treats every herald occurrence
identically.

# Custom Heralds

Any non-empty string can serve as the herald:

	in, _ := herald.New(herald.WithHerald("!!!"))
	in.Register(map[string]string{"user": "alice"})
	result, _ := in.Interpolate("deploy by !!!user")
	// result: "deploy by alice"

Shorter runs of the herald characters ("!!" above) are plain text.

# Required Placeholders

Keys marked with Require must be resolved at least once per Interpolate
call, or the call fails:

	in.Require("name")
	_, err := in.Interpolate("no placeholders here")
	// err: required placeholder unused: %name

# Errors

All failures are typed and carry enough context to reconstruct the
offending key: DuplicateKeyError and AmbiguousKeysError at registration,
InvalidPlaceholderError, IncompletePlaceholderError, and MissingKeysError
during interpolation. A failing Interpolate call returns an empty string,
never partial output.

# Thread Safety

An Interpolator follows a build-then-use lifecycle: Register and Require
are not safe to call concurrently, but once registration is complete any
number of goroutines may call Interpolate on the same instance, since
scanning never writes to the registry.
*/
package herald
