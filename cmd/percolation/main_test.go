package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/config"
)

func TestRun_PrintsThreeLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-seed", "5", "10", "20"}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "mean"))
	assert.True(t, strings.HasPrefix(lines[1], "stddev"))
	assert.True(t, strings.HasPrefix(lines[2], "95% confidence interval = ["))
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-seed", "3", "-workers", "1", "8", "10"}, &a))
	require.NoError(t, run(context.Background(), []string{"-seed", "3", "-workers", "3", "8", "10"}, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 5\ntrials: 4\nseed: 11\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &buf))
	assert.Contains(t, buf.String(), "mean")
}

func TestRun_InvalidArguments(t *testing.T) {
	cases := [][]string{
		{"0", "10"},
		{"10", "-1"},
		{"ten", "10"},
		{"10"},
	}
	for _, args := range cases {
		var buf bytes.Buffer
		err := run(context.Background(), args, &buf)
		assert.Error(t, err, "args %v", args)
		assert.Empty(t, buf.String())
	}

	err := run(context.Background(), []string{"0", "10"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_ExplicitFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 10\ntrials: 8\nseed: 11\nworkers: 2\n"), 0o600))

	var fromConfig, zeroSeed, noConfig bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &fromConfig))
	require.NoError(t, run(context.Background(), []string{"-config", path, "-seed", "0", "-workers", "0"}, &zeroSeed))
	require.NoError(t, run(context.Background(), []string{"-seed", "0", "10", "8"}, &noConfig))

	assert.Equal(t, noConfig.String(), zeroSeed.String(), "-seed 0 must replace the config seed")
	assert.NotEqual(t, fromConfig.String(), zeroSeed.String())
}
