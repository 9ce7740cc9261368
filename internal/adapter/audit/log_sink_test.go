package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/srgjo27/event_ticketing/internal/adapter/audit"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSink_WritesEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := audit.NewLogSink(zap.New(core), 8)

	ctx, cancel := context.WithCancel(context.Background())
	go sink.Run(ctx)

	sink.Record(domain.AuditEvent{
		Description: "Role ATTENDEE not permitted to manage event",
		Timestamp:   time.Now(),
		UserID:      "3",
		Role:        "ATTENDEE",
	})

	cancel()
	sink.Wait()

	entries := logs.FilterMessage("Role ATTENDEE not permitted to manage event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "security", entries[0].LoggerName)
	assert.Equal(t, "3", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "ATTENDEE", entries[0].ContextMap()["role"])
}

func TestLogSink_DropsWhenFull(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := audit.NewLogSink(zap.New(core), 1)

	sink.Record(domain.AuditEvent{Description: "first"})
	sink.Record(domain.AuditEvent{Description: "second"})

	assert.Equal(t, int64(1), sink.Dropped())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Run(ctx)

	assert.Equal(t, 1, logs.FilterMessage("first").Len())
	assert.Equal(t, 1, logs.FilterMessage("audit events dropped").Len())
}
