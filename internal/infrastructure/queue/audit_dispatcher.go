package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

var (
	// ErrQueueFull is returned when the worker for an event has no free slot.
	ErrQueueFull = errors.New("audit queue full")
	// ErrQueueClosed is returned after Close.
	ErrQueueClosed = errors.New("audit queue closed")
)

// AuditDispatcher moves audit writes off the request path. Events are routed
// to a fixed set of workers by target id, so events about the same account or
// class are written in the order they were recorded.
type AuditDispatcher struct {
	workers []chan *domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ ports.AuditRepository = (*AuditDispatcher)(nil)

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan *domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx bounds the individual writes.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// InsertEvent queues event without blocking. The request context is not
// kept: the write happens after the request has finished.
func (d *AuditDispatcher) InsertEvent(_ context.Context, event *domain.AuditEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrQueueClosed
	}

	select {
	case d.workers[d.shardIndex(event.TargetID)] <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are written.
func (d *AuditDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *AuditDispatcher) shardIndex(targetID int64) int {
	return int(uint64(targetID) % uint64(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.AuditEvent) {
	defer d.wg.Done()
	for event := range ch {
		writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		if err := d.repo.InsertEvent(writeCtx, event); err != nil {
			d.log.Warn().Err(err).
				Str("action", string(event.Action)).
				Int64("target_id", event.TargetID).
				Int("worker_id", id).
				Msg("audit write failed")
		}
		cancel()
	}
}
