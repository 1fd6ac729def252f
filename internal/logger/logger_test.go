package logger_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"taskBoard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ErrorAttachesError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Logger
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })

	logger.Error("Repository: insert failed", errors.New("boom"), zap.String("task_id", "42"))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "42", ctx["task_id"])
}

func TestLogger_HttpRequestInfo(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Logger
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })

	req := httptest.NewRequest("GET", "/tasks?include_archived=true", nil)
	logger.HttpRequestInfo(req, "HTTP_IN:")

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/tasks", ctx["path"])
	assert.Equal(t, "include_archived=true", ctx["query"])
}

func TestLogger_Init(t *testing.T) {
	prev := logger.Logger
	t.Cleanup(func() { logger.Set(prev) })

	require.NoError(t, logger.Init(false))
	assert.NotNil(t, logger.Logger)
}
