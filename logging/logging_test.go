// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dapfront/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, closer := logging.New(logging.Config{Level: "info"}, &buf)
	defer closer.Close()

	log.Debug("hidden")
	log.Info("sweep done", slog.Int("n", 4))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "sweep done", rec["msg"])
	assert.Equal(t, "dapfront", rec["service"])
	assert.EqualValues(t, 4, rec["n"])
	assert.Contains(t, rec, "timestamp")
	assert.NotContains(t, rec, "time")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log, _ := logging.New(logging.Config{Level: "debug", Format: "text"}, &buf)
	log.Debug("step", slog.Int("k", 2))
	assert.Contains(t, buf.String(), "k=2")
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dapfront.log")
	log, closer := logging.New(logging.Config{File: path, MaxSize: 1}, nil)
	log.Info("to file")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to file")
}
