package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cablenet/config"
	"github.com/katalvlaran/cablenet/logging"
)

func TestNew_Stderr(t *testing.T) {
	cfg := config.Default().Log
	l, closer, err := logging.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
	assert.Equal(t, os.Stderr, l.Out)
	assert.NoError(t, closer.Close())
}

func TestNew_RotatingJSONFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "debug"
	cfg.Format = "json"
	cfg.File = filepath.Join(t.TempDir(), "logs", "cablenet.log")

	l, closer, err := logging.New(cfg)
	require.NoError(t, err)
	l.WithField("run_id", "abc").Debug("pipeline: run finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "pipeline: run finished", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	_, _, err := logging.New(cfg)
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	l.Error("dropped")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_AutoFormatToFileIsJSON(t *testing.T) {
	cfg := config.Default().Log
	cfg.Format = "auto"
	cfg.File = filepath.Join(t.TempDir(), "cablenet.log")

	l, closer, err := logging.New(cfg)
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}
