package config

import (
	"github.com/randalmurphal/herald/pkg/herald"
)

// Definition is a declarative description of an interpolator.
// The zero value builds a default interpolator with no placeholders.
type Definition struct {
	// Herald is the placeholder marker. Empty means herald.DefaultHerald.
	Herald string `yaml:"herald" json:"herald"`

	// Escape controls the herald-literal escape entry. Nil means enabled.
	Escape *bool `yaml:"escape" json:"escape"`

	// Placeholders maps keys to their replacement values.
	Placeholders map[string]string `yaml:"placeholders" json:"placeholders"`

	// Required lists keys every interpolation must resolve.
	Required []string `yaml:"required" json:"required"`
}

// Build constructs an interpolator from the definition, registering all
// placeholders and required keys.
func (d Definition) Build() (*herald.Interpolator, error) {
	var opts []herald.Option
	if d.Herald != "" {
		opts = append(opts, herald.WithHerald(d.Herald))
	}
	if d.Escape != nil && !*d.Escape {
		opts = append(opts, herald.WithoutEscape())
	}

	in, err := herald.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := in.Register(d.Placeholders); err != nil {
		return nil, err
	}
	in.Require(d.Required...)
	return in, nil
}
