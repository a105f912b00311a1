package cliutil_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lambdasheet/cheatsheet"
	"github.com/charmingruby/lambdasheet/internal/cliutil"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := cliutil.Parse("test", nil, env(nil))
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Seed.IsNone())
}

func TestParseSeedFromFlagWinsOverEnv(t *testing.T) {
	cfg, err := cliutil.Parse("test", []string{"-v", "-seed", "7"}, env(map[string]string{cliutil.SeedEnv: "9"}))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, uint64(7), cfg.Seed.MustGet())
}

func TestParseSeedFromEnv(t *testing.T) {
	cfg, err := cliutil.Parse("test", nil, env(map[string]string{cliutil.SeedEnv: "9"}))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed.MustGet())
}

func TestParseRejectsBadSeed(t *testing.T) {
	_, err := cliutil.Parse("test", []string{"-seed", "abc"}, env(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid seed "abc"`)
}

func TestSeededRunnerIsReproducible(t *testing.T) {
	cfg, err := cliutil.Parse("test", []string{"-seed", "3", "-v"}, env(nil))
	require.NoError(t, err)

	run := func() (string, string) {
		var out, logs bytes.Buffer
		require.NoError(t, cfg.Runner(&out, cliutil.Logger(&logs, cfg.Verbose)).FunctionalInterfaces())
		return out.String(), logs.String()
	}
	first, logs := run()
	second, _ := run()
	assert.Equal(t, first, second)
	assert.True(t, strings.Contains(logs, "level=DEBUG"))
}

func TestRunExitCodes(t *testing.T) {
	var out, errOut bytes.Buffer
	ok := func(r *cheatsheet.Runner) error { return r.Primitives() }

	assert.Equal(t, 0, cliutil.Run("primitives", nil, env(nil), &out, &errOut, ok))
	assert.Equal(t, "45\n", out.String())

	out.Reset()
	assert.Equal(t, 0, cliutil.Run("primitives", []string{"-h"}, env(nil), &out, &errOut, ok))
	assert.Empty(t, out.String())

	errOut.Reset()
	assert.Equal(t, 2, cliutil.Run("primitives", []string{"-seed", "abc"}, env(nil), &out, &errOut, ok))
	assert.Contains(t, errOut.String(), "bad arguments")

	failing := func(*cheatsheet.Runner) error { return errors.New("boom") }
	assert.Equal(t, 1, cliutil.Run("primitives", nil, env(nil), &out, &errOut, failing))
}
