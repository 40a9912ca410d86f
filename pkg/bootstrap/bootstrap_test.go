package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/abgdnv/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func Test_toLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, toLevel("debug"))
	assert.Equal(t, slog.LevelWarn, toLevel("warn"))
	assert.Equal(t, slog.LevelError, toLevel("error"))
	assert.Equal(t, slog.LevelInfo, toLevel(""))
	assert.Equal(t, slog.LevelInfo, toLevel("verbose"))
}

func Test_NewLoggerTo(t *testing.T) {
	// given
	buf := &bytes.Buffer{}
	log := NewLoggerTo(buf, "warn")

	// when
	log.Info("dropped")
	log.WarnContext(logger.WithCommandID(context.Background(), "c-1"), "kept")

	// then
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"command_id":"c-1"`)
}
