package cards

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/logging"
)

// persister writes full-list snapshots to the store from a single background
// goroutine. Scheduling never blocks: a snapshot that has not been written
// yet is replaced by the newer one, so the store always ends up with the
// latest list (last write wins).
type persister struct {
	store   Store
	key     string
	timeout time.Duration
	logger  logging.Logger

	mu      sync.Mutex
	pending []byte
	dirty   bool

	wake  chan struct{}
	flush chan chan struct{}
	done  chan struct{}
}

func newPersister(store Store, key string, timeout time.Duration, logger logging.Logger) *persister {
	return &persister{
		store:   store,
		key:     key,
		timeout: timeout,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		flush:   make(chan chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *persister) schedule(snapshot []byte) {
	p.mu.Lock()
	p.pending = snapshot
	p.dirty = true
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// run processes scheduled snapshots until ctx is done, then writes whatever
// is still pending. Writes are detached from ctx so shutdown never aborts
// one halfway; each is bounded by the persist timeout instead.
func (p *persister) run(ctx context.Context) error {
	defer close(p.done)
	writeCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-p.wake:
			p.writePending(writeCtx)
		case ack := <-p.flush:
			p.writePending(writeCtx)
			close(ack)
		case <-ctx.Done():
			p.writePending(writeCtx)
			return nil
		}
	}
}

// waitFlushed returns once every snapshot scheduled before the call has been
// handed to the store. If run has already exited the write happens inline.
func (p *persister) waitFlushed(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case p.flush <- ack:
	case <-p.done:
		p.writePending(ctx)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *persister) writePending(ctx context.Context) {
	p.mu.Lock()
	if !p.dirty {
		p.mu.Unlock()
		return
	}
	data := p.pending
	p.pending, p.dirty = nil, false
	p.mu.Unlock()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.store.Set(ctx, p.key, data); err != nil {
		p.logger.Error(ctx, "persist cards failed", "err", err)
		return
	}
	p.logger.Debug(ctx, "cards persisted", "bytes", len(data))
}
