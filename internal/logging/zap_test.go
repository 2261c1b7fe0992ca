package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)

	want := []struct {
		level zapcore.Level
		msg   string
		key   string
	}{
		{zapcore.DebugLevel, "dbg", "a"},
		{zapcore.InfoLevel, "inf", "b"},
		{zapcore.WarnLevel, "wrn", "c"},
		{zapcore.ErrorLevel, "err", "d"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, entries[i].Level)
		assert.Equal(t, w.msg, entries[i].Message)
		assert.Contains(t, entries[i].ContextMap(), w.key)
	}
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("op", "client.Execute")

	log.Info(context.Background(), "hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "client.Execute", logs.All()[0].ContextMap()["op"])
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(FormatSlog, "info", &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "slog-line", "k", "v")
	assert.Contains(t, buf.String(), "msg=slog-line")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	l, err = New(FormatZap, "debug", &buf)
	require.NoError(t, err)
	l.Debug(context.Background(), "zap-line", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"zap-line"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNew_Errors(t *testing.T) {
	_, err := New("logrus", "info", &bytes.Buffer{})
	require.Error(t, err)

	_, err = New(FormatSlog, "loud", &bytes.Buffer{})
	require.Error(t, err)

	_, err = New(FormatZap, "loud", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(FormatSlog, "warn", &buf)
	require.NoError(t, err)

	l.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}
