package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, err := Parse(nil, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Empty(t, config.ConfigPath)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
}

func TestParse_ConfigPathVariants(t *testing.T) {
	var out bytes.Buffer

	config, _, err := Parse([]string{"-config", "app.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "app.hcl", config.ConfigPath)

	config, _, err = Parse([]string{"-c", "short.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "short.hcl", config.ConfigPath)

	config, _, err = Parse([]string{"positional.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "positional.hcl", config.ConfigPath)
}

func TestParse_ListenAndLogging(t *testing.T) {
	var out bytes.Buffer

	config, _, err := Parse([]string{"-listen", ":9090", "-log-format", "JSON", "-log-level", "DEBUG"}, &out)

	require.NoError(t, err)
	assert.Equal(t, ":9090", config.ListenAddr)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestParse_InvalidValuesExitWithCode2(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-log-format", "yaml"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	_, _, err = Parse([]string{"-log-level", "verbose"}, &out)
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	var out bytes.Buffer

	_, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "appweave")
}
