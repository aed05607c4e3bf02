package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/herald/pkg/herald"
	"github.com/randalmurphal/herald/pkg/herald/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromYAML verifies parsing of YAML definitions.
func TestFromYAML(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		def, err := config.FromYAML([]byte(`
herald: "$"
escape: false
placeholders:
  name: World
  env: prod
required:
  - name
`))
		require.NoError(t, err)
		assert.Equal(t, "$", def.Herald)
		require.NotNil(t, def.Escape)
		assert.False(t, *def.Escape)
		assert.Equal(t, map[string]string{"name": "World", "env": "prod"}, def.Placeholders)
		assert.Equal(t, []string{"name"}, def.Required)
	})

	t.Run("empty definition", func(t *testing.T) {
		def, err := config.FromYAML([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, def.Herald)
		assert.Nil(t, def.Escape)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("placeholders: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

// TestFromJSON verifies parsing of JSON definitions.
func TestFromJSON(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		def, err := config.FromJSON([]byte(`{
			"herald": "!!!",
			"placeholders": {"a": "one"},
			"required": ["a"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, "!!!", def.Herald)
		assert.Nil(t, def.Escape)
		assert.Equal(t, map[string]string{"a": "one"}, def.Placeholders)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := config.FromJSON([]byte("{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})
}

// TestFromFile verifies extension-based format detection.
func TestFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "def.yaml")
		require.NoError(t, os.WriteFile(path, []byte("herald: '#'"), 0o644))

		def, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "#", def.Herald)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "def.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"herald": "#"}`), 0o644))

		def, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "#", def.Herald)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "def.toml")
		require.NoError(t, os.WriteFile(path, []byte("herald = '#'"), 0o644))

		_, err := config.FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported definition file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(tmpDir, "nope.yaml"))
		require.Error(t, err)
	})
}

// TestDefinition_Build verifies interpolator construction from definitions.
func TestDefinition_Build(t *testing.T) {
	t.Run("zero value builds defaults", func(t *testing.T) {
		in, err := config.Definition{}.Build()
		require.NoError(t, err)
		assert.Equal(t, "%", in.Herald())

		result, err := in.Interpolate("%%")
		require.NoError(t, err)
		assert.Equal(t, "%", result)
	})

	t.Run("placeholders and required keys wired through", func(t *testing.T) {
		def := config.Definition{
			Placeholders: map[string]string{"name": "World"},
			Required:     []string{"name"},
		}
		in, err := def.Build()
		require.NoError(t, err)

		result, err := in.Interpolate("Hello %name")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", result)

		_, err = in.Interpolate("no placeholders")
		var missErr *herald.MissingKeysError
		require.ErrorAs(t, err, &missErr)
	})

	t.Run("escape disabled", func(t *testing.T) {
		escape := false
		def := config.Definition{Escape: &escape}
		in, err := def.Build()
		require.NoError(t, err)
		assert.Empty(t, in.Keys())
	})

	t.Run("conflicting placeholders fail", func(t *testing.T) {
		def := config.Definition{
			Placeholders: map[string]string{"foo": "one", "foobar": "two"},
		}
		_, err := def.Build()

		var ambErr *herald.AmbiguousKeysError
		require.ErrorAs(t, err, &ambErr)
	})

	t.Run("custom herald from yaml end to end", func(t *testing.T) {
		def, err := config.FromYAML([]byte(`
herald: "!!!"
placeholders:
  user: alice
`))
		require.NoError(t, err)

		in, err := def.Build()
		require.NoError(t, err)

		result, err := in.Interpolate("deploy by !!!user, not by !!")
		require.NoError(t, err)
		assert.Equal(t, "deploy by alice, not by !!", result)
	})
}
