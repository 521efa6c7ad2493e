package cards

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/logging"
	"github.com/google/uuid"
)

// DefaultStoreKey is the store key holding the serialized card list.
const DefaultStoreKey = "cards_v1"

const (
	defaultPersistTimeout = 3 * time.Second
	maxIDAttempts         = 5
)

// Store is the persistence the provider needs: a string-keyed byte store.
// Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Provider owns the in-memory card list and is its only writer. Every
// mutation updates memory first and then schedules a full-list write to the
// store; memory stays authoritative if that write fails.
type Provider struct {
	store   Store
	key     string
	logger  logging.Logger
	now     func() time.Time
	newID   func() string
	loc     *time.Location
	timeout time.Duration

	mu    sync.RWMutex
	cards []Card

	persist *persister
}

// Option configures a Provider.
type Option func(*Provider)

// WithStoreKey overrides DefaultStoreKey.
func WithStoreKey(key string) Option {
	return func(p *Provider) { p.key = key }
}

func WithLogger(l logging.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// WithClock replaces time.Now; used for expiry checks and addedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(p *Provider) { p.newID = gen }
}

// WithLocation sets the time zone in which expiry months are evaluated.
func WithLocation(loc *time.Location) Option {
	return func(p *Provider) { p.loc = loc }
}

// WithPersistTimeout bounds each store write. Zero disables the bound.
func WithPersistTimeout(d time.Duration) Option {
	return func(p *Provider) { p.timeout = d }
}

// NewProvider returns a provider with an empty list. Call Load to adopt the
// stored list and Run to start background persistence.
func NewProvider(store Store, opts ...Option) *Provider {
	p := &Provider{
		store:   store,
		key:     DefaultStoreKey,
		logger:  logging.Discard(),
		now:     time.Now,
		newID:   newUUID,
		loc:     time.Local,
		timeout: defaultPersistTimeout,
		cards:   make([]Card, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "cards", "key", p.key)
	p.persist = newPersister(store, p.key, p.timeout, p.logger)
	return p
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load replaces the in-memory list with the stored one. A missing key,
// a read error or a value that is not a JSON array of cards all leave the
// provider with an empty list; failures are logged, not returned.
func (p *Provider) Load(ctx context.Context) {
	loaded := make([]Card, 0)
	defer func() {
		p.mu.Lock()
		p.cards = loaded
		p.mu.Unlock()
	}()

	raw, err := p.store.Get(ctx, p.key)
	if err != nil {
		p.logger.Error(ctx, "failed to load cards", "err", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var stored []Card
	if err := json.Unmarshal(raw, &stored); err != nil {
		p.logger.Warn(ctx, "stored cards unreadable, starting empty", "err", err)
		return
	}
	if stored != nil {
		loaded = stored
	}
	p.logger.Info(ctx, "cards loaded", "count", len(loaded))
}

// List returns a copy of the cards, newest first.
func (p *Provider) List() []Card {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Add validates the payload and, on success, prepends the new card and
// schedules persistence. On rejection it returns nil and an error matching
// one of ErrInvalidNumber, ErrInvalidExpiry, ErrExpired or ErrInvalidType.
func (p *Provider) Add(ctx context.Context, payload AddCardPayload) (*Card, error) {
	now := p.now()
	d, err := Validate(payload, now, p.loc)
	if err != nil {
		p.logger.Info(ctx, "card rejected", "reason", Reason(err), "err", err)
		return nil, err
	}

	card := Card{
		Brand:    d.Brand,
		Last4:    d.Last4,
		ExpMonth: d.Expiry.Month,
		ExpYear:  d.Expiry.Year,
		Holder:   d.Holder,
		Nickname: d.Nickname,
		Type:     d.Type,
		AddedAt:  now.UTC().Truncate(time.Millisecond),
	}

	p.mu.Lock()
	card.ID = p.uniqueIDLocked()
	next := make([]Card, 0, len(p.cards)+1)
	next = append(next, card)
	p.cards = append(next, p.cards...)
	p.scheduleLocked(ctx)
	p.mu.Unlock()

	p.logger.Info(ctx, "card added", "id", card.ID, "brand", card.Brand, "last4", card.Last4)
	return &card, nil
}

// Delete removes the card with the given id. An unknown id changes nothing
// but the list is still written back.
func (p *Provider) Delete(ctx context.Context, id string) {
	p.mu.Lock()
	kept := make([]Card, 0, len(p.cards))
	for _, c := range p.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	removed := len(kept) != len(p.cards)
	p.cards = kept
	p.scheduleLocked(ctx)
	p.mu.Unlock()

	p.logger.Info(ctx, "card delete", "id", id, "removed", removed)
}

// Run performs scheduled writes until ctx is done. Pending changes are
// written once more on the way out.
func (p *Provider) Run(ctx context.Context) error {
	return p.persist.run(ctx)
}

// Flush waits until every change made before the call has been written.
func (p *Provider) Flush(ctx context.Context) error {
	return p.persist.waitFlushed(ctx)
}

// scheduleLocked hands the current list to the persister. It runs under mu
// so snapshots reach the persister in mutation order.
func (p *Provider) scheduleLocked(ctx context.Context) {
	snapshot, err := json.Marshal(p.cards)
	if err != nil {
		p.logger.Error(ctx, "encode cards failed", "err", err)
		return
	}
	p.persist.schedule(snapshot)
}

func (p *Provider) uniqueIDLocked() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := p.newID()
		if id != "" && !p.hasIDLocked(id) {
			return id
		}
	}
	return uuid.NewString()
}

func (p *Provider) hasIDLocked(id string) bool {
	for _, c := range p.cards {
		if c.ID == id {
			return true
		}
	}
	return false
}
