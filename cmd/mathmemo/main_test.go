package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsEveryPair(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(),
		[]string{"-iterations", "3", "-n", "100", "-matrix", "4"},
		&stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	for _, name := range []string{"sieve", "matmul", "stddev"} {
		assert.Contains(t, out, name+"/plain: 3 iterations")
		assert.Contains(t, out, name+"/memoized: 3 iterations")
		assert.Contains(t, out, name+": speedup x")
	}
	assert.Contains(t, stderr.String(), "starting benchmarks")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathmemo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bench]\niterations = 2\nwarmup = 0\n[log]\nformat = \"json\"\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(),
		[]string{"-config", path, "-n", "50", "-matrix", "2"},
		&stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "sieve/plain: 2 iterations")
	assert.Contains(t, stderr.String(), `"msg":"starting benchmarks"`)
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  max_entries: -1\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "config.cache.max_entries")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-n", "1"}, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stdout, &stderr))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 130, run(ctx, []string{"-iterations", "1"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
