/*
Package config builds interpolators from declarative definitions.

# Overview

config loads a Definition — herald, escape flag, placeholder mappings,
and required keys — from YAML or JSON and turns it into a ready-to-use
herald.Interpolator. This keeps placeholder sets in data files instead
of code, which suits templates maintained alongside configuration.

# Basic Usage

Load a definition from a file and build the interpolator:

	def, err := config.FromFile("placeholders.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	in, err := def.Build()

A definition file looks like:

	herald: "%"
	escape: true
	placeholders:
	  name: World
	  env: production
	required:
	  - name

All fields are optional: a missing herald means the default "%", a
missing escape flag means escaping stays enabled.

# Loading From Bytes

Definitions can also be parsed from memory:

	def, err := config.FromYAML(yamlBytes)
	def, err = config.FromJSON(jsonBytes)

# Errors

Build reports the same typed errors as direct herald use: conflicting
or duplicate placeholder keys in the definition fail with
herald.AmbiguousKeysError or herald.DuplicateKeyError.
*/
package config
