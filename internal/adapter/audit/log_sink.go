package audit

import (
	"context"
	"sync/atomic"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"go.uber.org/zap"
)

// LogSink writes audit events to a dedicated logger from a background
// goroutine. Record never blocks; events are dropped when the buffer is full.
type LogSink struct {
	events  chan domain.AuditEvent
	logger  *zap.Logger
	dropped atomic.Int64
	done    chan struct{}
}

func NewLogSink(logger *zap.Logger, buffer int) *LogSink {
	return &LogSink{
		events: make(chan domain.AuditEvent, buffer),
		logger: logger.Named("security"),
		done:   make(chan struct{}),
	}
}

func (s *LogSink) Record(ev domain.AuditEvent) {
	select {
	case s.events <- ev:
	default:
		s.dropped.Add(1)
	}
}

func (s *LogSink) Dropped() int64 {
	return s.dropped.Load()
}

// Run drains events until ctx is cancelled, then flushes what is buffered.
func (s *LogSink) Run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case ev := <-s.events:
			s.write(ev)
		case <-ctx.Done():
			for {
				select {
				case ev := <-s.events:
					s.write(ev)
				default:
					if n := s.Dropped(); n > 0 {
						s.logger.Warn("audit events dropped", zap.Int64("count", n))
					}
					return
				}
			}
		}
	}
}

// Wait blocks until Run has returned.
func (s *LogSink) Wait() {
	<-s.done
}

func (s *LogSink) write(ev domain.AuditEvent) {
	s.logger.Warn(ev.Description,
		zap.Time("at", ev.Timestamp),
		zap.String("user_id", ev.UserID),
		zap.String("role", ev.Role),
	)
}
