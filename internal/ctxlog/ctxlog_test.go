package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/RuslanAgishev/drake/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

// TestFromContext_RoundTrip verifies that the installed logger comes back.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	ctxlog.FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

// TestFromContext_FallsBackToDefault verifies bare contexts still log.
func TestFromContext_FallsBackToDefault(t *testing.T) {
	logger := ctxlog.FromContext(context.Background())
	assert.NotNil(t, logger)
	assert.Same(t, slog.Default(), logger)
}
