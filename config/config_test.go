package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/filesize/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "filesize.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	conf, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
	assert.Equal(t, "warn", conf.Log.Level)
	assert.Equal(t, "pretty", conf.Log.Format)
	assert.Equal(t, "text", conf.Output.Format)
	assert.Equal(t, "auto", conf.Output.Color)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
log:
  level: debug
  format: json
output:
  format: table
  color: never
`)
	conf, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, conf.Log)
	assert.Equal(t, config.Output{Format: "table", Color: "never"}, conf.Output)
}

func TestLoadUpperCaseOutputFormat(t *testing.T) {
	t.Parallel()

	conf, err := config.Load(writeFile(t, "output:\n  format: JSON\n"))
	require.NoError(t, err)
	assert.Equal(t, "json", conf.Output.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{name: "syntax", content: "log: [", msg: "failed to parse config file"},
		{name: "log level", content: "log:\n  level: loud\n", msg: "level must be one of"},
		{name: "log format", content: "log:\n  format: xml\n", msg: "format must be 'json' or 'pretty'"},
		{name: "output format", content: "output:\n  format: csv\n", msg: "format must be one of: text, json, table"},
		{name: "output color", content: "output:\n  color: rainbow\n", msg: "color must be one of"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeFile(t, test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestOverride(t *testing.T) {
	t.Parallel()

	conf := config.Default()
	err := conf.Override(config.Config{
		Log:    config.Log{Level: "debug", Format: ""},
		Output: config.Output{Format: "json", Color: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, config.Log{Level: "debug", Format: "pretty"}, conf.Log)
	assert.Equal(t, config.Output{Format: "json", Color: "auto"}, conf.Output)

	err = conf.Override(config.Config{Output: config.Output{Format: "TABLE"}}) //nolint:exhaustruct
	require.NoError(t, err)
	assert.Equal(t, "table", conf.Output.Format)

	err = conf.Override(config.Config{Output: config.Output{Format: "yaml"}}) //nolint:exhaustruct
	require.Error(t, err)
}
