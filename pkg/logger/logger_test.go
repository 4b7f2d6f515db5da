package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(false, &buf)
	log.Error("should vanish")

	assert.False(t, log.Core().Enabled(zap.DebugLevel))
	assert.Empty(t, buf.String())
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(true, &buf)
	log.Debug("skipping file", zap.String("path", "/a.png"))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "skipping file")
	assert.Contains(t, out, `"path": "/a.png"`)
}

func TestNewSugared(t *testing.T) {
	var buf bytes.Buffer
	NewSugared(true, &buf).Infof("wrote %d files", 3)
	assert.Contains(t, buf.String(), "wrote 3 files")
}
