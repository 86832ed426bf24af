package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).
		WithFields(map[string]interface{}{"sessionId": "abc"}).
		WithError(errors.New("boom"))

	log.Info("Conversation turn processed", map[string]interface{}{
		"state": "ask_amount",
		"cause": errors.New("lookup failed"),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "Conversation turn processed", entry.Message)
	assert.Equal(t, "abc", fields["sessionId"])
	assert.Equal(t, "ask_amount", fields["state"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "lookup failed", fields["cause"])
}

func TestNewWithOutput_BadPathFallsBackToNop(t *testing.T) {
	l := NewWithOutput("info", "json", "/nonexistent-dir/for/sure/app.log")
	require.NotNil(t, l)
	l.Info("dropped")
}
