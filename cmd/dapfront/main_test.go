// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dapfront/store"
)

func TestRun_Pipeline(t *testing.T) {
	root := t.TempDir()
	common := []string{
		"--instances", filepath.Join(root, "data"),
		"--results", root,
		"--plots", filepath.Join(root, "plots"),
		"--metrics", filepath.Join(root, "dapfront.prom"),
		"--sizes", "3,4",
		"--divs", "uniform,random",
		"--count", "2",
		"--workers", "2",
		"--log-format", "text",
	}
	ctx := context.Background()
	var out, errOut bytes.Buffer

	for _, cmd := range []string{"generate", "approx", "timing"} {
		require.NoError(t, run(ctx, append([]string{cmd}, common...), &out, &errOut), cmd)
	}
	assert.FileExists(t, filepath.Join(root, "data", "random_div_4_1.yaml"))
	assert.FileExists(t, filepath.Join(root, store.ApproxDir, "uniform_div_3_0.csv"))
	assert.FileExists(t, filepath.Join(root, "dapfront.prom"))
	assert.Contains(t, out.String(), "samples")

	require.NoError(t, run(ctx, append([]string{"plot", "--instance", "uniform_div_3_0", "--timings", "--format", "svg"}, common...), &out, &errOut))
	assert.FileExists(t, filepath.Join(root, "plots", "uniform_div_3_0.svg"))
	assert.FileExists(t, filepath.Join(root, "plots", "timings.svg"))
	assert.FileExists(t, filepath.Join(root, "plots", "timings_log.svg"))
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), nil, &out, &errOut), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"fly"}, &out, &errOut), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"plot"}, &out, &errOut), errUsage)
}
