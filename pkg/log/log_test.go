package log

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))

	_, generated := WithCorrelationID(context.Background(), "  ")
	assert.Len(t, generated, 36)

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "production")
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	ctx, _ := WithCorrelationID(context.Background(), "corr-1")
	ctx = WithUserID(ctx, "user-1")
	ForContext(ctx).WithField("customer_id", "c1").Info("Cliente criado")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"correlation_id":"corr-1"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
	assert.Contains(t, out, `"customer_id":"c1"`)
	assert.Contains(t, out, `"message":"Cliente criado"`)
	assert.False(t, IsDevelopment())
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	Setup("barulhento", "development")
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.True(t, IsDevelopment())
}
