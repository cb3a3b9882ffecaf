// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestContext(t *testing.T) {
	t.Run("GeneratesIDAndDefaultSource", func(t *testing.T) {
		ctx := GenerateRequestContext(nil, "", "")
		assert.NotEmpty(t, ctx.Value(ContextKeyRequestID))
		assert.Equal(t, "Unknown", ctx.Value(ContextKeyRequestSource))
	})

	t.Run("KeepsExistingValues", func(t *testing.T) {
		ctx := GenerateRequestContext(context.Background(), "req-1", ContextSourceCLI)
		ctx = GenerateRequestContext(ctx, "req-2", ContextSourceInternal)
		assert.Equal(t, "req-1", ctx.Value(ContextKeyRequestID))
		assert.Equal(t, ContextSourceCLI, ctx.Value(ContextKeyRequestSource))
	})
}

func TestLogcCarriesRequestFields(t *testing.T) {
	ctx := WithController(GenerateRequestContext(context.Background(), "req-9", ContextSourceCLI), "410000")

	entry := Logc(ctx)
	assert.Equal(t, "req-9", entry.Data["requestID"])
	assert.Equal(t, ContextSourceCLI, entry.Data["requestSource"])
	assert.Equal(t, "410000", entry.Data["controller"])

	entry = Logc(context.Background())
	_, hasController := entry.Data["controller"]
	assert.False(t, hasController)
}

func TestLogcWithLogFields(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "req-3", ContextSourceCLI)

	entry := Logc(ctx).WithFields(LogFields{"copyPair": "P1", "ldevId": 105})
	assert.Equal(t, "P1", entry.Data["copyPair"])
	assert.Equal(t, 105, entry.Data["ldevId"])
	assert.Equal(t, "req-3", entry.Data["requestID"])
}

func TestLogdDiscardsWhenTraceDisabled(t *testing.T) {
	entry := Logd(context.Background(), false)
	assert.Equal(t, discardLogger, entry.Logger)

	entry = Logd(context.Background(), true)
	assert.Equal(t, log.StandardLogger(), entry.Logger)
}

func TestInitLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	assert.NoError(t, InitLogLevel(true, "error"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.NoError(t, InitLogLevel(false, "warn"))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, InitLogLevel(false, "loud"))
}

func TestInitLogFormat(t *testing.T) {
	defer log.SetFormatter(&log.TextFormatter{})

	assert.NoError(t, InitLogFormat(JSONFormat))
	assert.IsType(t, &JSONFormatter{}, log.StandardLogger().Formatter)
	assert.Error(t, InitLogFormat("xml"))
}

func TestConsoleHookTruncatesLongEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	hook, err := NewConsoleHook(JSONFormat, buf)
	assert.NoError(t, err)

	entry := log.NewEntry(log.New())
	entry.Message = strings.Repeat("x", MaxLogEntryLength+10)
	assert.NoError(t, hook.Fire(entry))
	assert.True(t, strings.HasSuffix(buf.String(), "<truncated>\n"))

	_, err = NewConsoleHook("xml", buf)
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	entry := log.NewEntry(log.New())
	entry.Message = "Split GAD pair."
	entry.Level = log.InfoLevel
	entry.Data = log.Fields{"copyPair": "P1", "error": errors.New("boom"), "requestSource": nil}

	out, err := (&JSONFormatter{DisableTimestamp: true}).Format(entry)
	assert.NoError(t, err)

	var decoded map[string]string
	assert.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]string{
		"message":  "Split GAD pair.",
		"level":    "info",
		"copyPair": "P1",
		"error":    "boom",
	}, decoded)
}
