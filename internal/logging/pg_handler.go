package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobboard/jobboard-api/internal/models"
)

const batchSize = 50

// PGHandler is an slog.Handler that batches ERROR+ logs to PostgreSQL.
type PGHandler struct {
	write   func([]models.SystemLog) error
	mu      sync.Mutex
	buffer  []models.SystemLog
	attrs   []slog.Attr
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}
	pending sync.WaitGroup
}

func NewPGHandler(db *gorm.DB) *PGHandler {
	return newPGHandler(func(batch []models.SystemLog) error {
		return db.CreateInBatches(batch, batchSize).Error
	}, 5*time.Second)
}

func newPGHandler(write func([]models.SystemLog) error, interval time.Duration) *PGHandler {
	h := &PGHandler{
		write:   write,
		buffer:  make([]models.SystemLog, 0, batchSize),
		ticker:  time.NewTicker(interval),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *PGHandler) flushLoop() {
	defer close(h.stopped)
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *PGHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.SystemLog, 0, batchSize)
	h.mu.Unlock()

	if err := h.write(batch); err != nil {
		// Logged at WARN so the record does not loop back into this handler.
		slog.Warn("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

func (h *PGHandler) flushAsync() {
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		h.flush()
	}()
}

// Stop flushes what is buffered and returns once the flush has finished.
func (h *PGHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
	<-h.stopped
	h.pending.Wait()
}

// Enabled only handles ERROR and above.
func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := toSystemLog(record, h.attrs)

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= batchSize
	h.mu.Unlock()

	if needFlush {
		h.flushAsync()
	}
	return nil
}

// WithAttrs returns a handler sharing this one's buffer that adds attrs to
// every record.
func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &childHandler{parent: h, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *PGHandler) WithGroup(name string) slog.Handler {
	return h
}

type childHandler struct {
	parent *PGHandler
	attrs  []slog.Attr
}

func (c *childHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return c.parent.Enabled(ctx, level)
}

func (c *childHandler) Handle(_ context.Context, record slog.Record) error {
	entry := toSystemLog(record, c.attrs)

	c.parent.mu.Lock()
	c.parent.buffer = append(c.parent.buffer, entry)
	needFlush := len(c.parent.buffer) >= batchSize
	c.parent.mu.Unlock()

	if needFlush {
		c.parent.flushAsync()
	}
	return nil
}

func (c *childHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &childHandler{parent: c.parent, attrs: append(append([]slog.Attr{}, c.attrs...), attrs...)}
}

func (c *childHandler) WithGroup(string) slog.Handler { return c }

func toSystemLog(record slog.Record, preset []slog.Attr) models.SystemLog {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "job_id":
			s := a.Value.String()
			entry.JobID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range preset {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}
	return entry
}
