// Package ledger keeps the authoritative in-process capacity state of every event.
//
// Each event owns its own mutex, so reservations for different events never
// contend. Pools are loaded lazily through a Loader, outside any lock.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

type Loader interface {
	Load(ctx context.Context, eventID int64) (*domain.TicketPool, error)
}

type LoaderFunc func(ctx context.Context, eventID int64) (*domain.TicketPool, error)

func (f LoaderFunc) Load(ctx context.Context, eventID int64) (*domain.TicketPool, error) {
	return f(ctx, eventID)
}

type entry struct {
	mu      sync.Mutex
	total   int
	booked  int
	retired bool
}

type Ledger struct {
	mu     sync.RWMutex
	pools  map[int64]*entry
	loader Loader
}

func New(loader Loader) *Ledger {
	return &Ledger{
		pools:  make(map[int64]*entry),
		loader: loader,
	}
}

func (l *Ledger) lookup(ctx context.Context, eventID int64) (*entry, error) {
	l.mu.RLock()
	e, ok := l.pools[eventID]
	l.mu.RUnlock()

	if ok {
		return e, nil
	}

	if l.loader == nil {
		return nil, domain.ErrEventNotFound
	}

	pool, err := l.loader.Load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return l.insert(*pool), nil
}

// insert keeps an existing entry if another goroutine got there first.
func (l *Ledger) insert(pool domain.TicketPool) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.pools[pool.EventID]; ok {
		return e
	}

	booked := pool.BookedQuantity
	if booked < 0 {
		booked = 0
	}

	e := &entry{total: pool.TotalCapacity, booked: booked}
	l.pools[pool.EventID] = e
	return e
}

// Reserve debits quantity tickets from the event's pool, or fails without
// changing state.
func (l *Ledger) Reserve(ctx context.Context, eventID int64, quantity int) error {
	if quantity <= 0 {
		return domain.ValidationError(domain.FieldError{Field: "quantity", Reason: "must be a positive integer"})
	}

	e, err := l.lookup(ctx, eventID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.retired {
		return domain.ErrEventNotFound
	}

	if available := e.total - e.booked; available < quantity {
		return domain.NewError(domain.KindInsufficientCapacity,
			fmt.Sprintf("only %d tickets available, %d requested", max(available, 0), quantity))
	}

	e.booked += quantity
	return nil
}

// Release credits quantity tickets back. Booked never drops below zero.
func (l *Ledger) Release(ctx context.Context, eventID int64, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	e, err := l.lookup(ctx, eventID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.booked -= quantity
	if e.booked < 0 {
		e.booked = 0
	}
	return nil
}

func (l *Ledger) Available(ctx context.Context, eventID int64) (int, error) {
	pool, err := l.Snapshot(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return max(pool.Available(), 0), nil
}

func (l *Ledger) Snapshot(ctx context.Context, eventID int64) (domain.TicketPool, error) {
	e, err := l.lookup(ctx, eventID)
	if err != nil {
		return domain.TicketPool{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return domain.TicketPool{EventID: eventID, TotalCapacity: e.total, BookedQuantity: e.booked}, nil
}

// Ensure loads the event's pool if it is not tracked yet.
func (l *Ledger) Ensure(ctx context.Context, eventID int64) error {
	_, err := l.lookup(ctx, eventID)
	return err
}

// Track registers a freshly created pool. An already tracked pool wins.
func (l *Ledger) Track(pool domain.TicketPool) {
	l.insert(pool)
}

// Resize changes the total capacity and returns the previous one. Shrinking
// below the booked quantity is refused.
func (l *Ledger) Resize(ctx context.Context, eventID int64, total int) (int, error) {
	if total < 0 {
		return 0, domain.ValidationError(domain.FieldError{Field: "capacity", Reason: "must be a non-negative integer"})
	}

	e, err := l.lookup(ctx, eventID)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if total < e.booked {
		return e.total, domain.NewError(domain.KindConflict,
			fmt.Sprintf("capacity %d is below the %d tickets already booked", total, e.booked))
	}

	previous := e.total
	e.total = total
	return previous, nil
}

// Retire closes the event to new reservations, but only while nothing is booked.
func (l *Ledger) Retire(ctx context.Context, eventID int64) error {
	e, err := l.lookup(ctx, eventID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.booked > 0 {
		return domain.NewError(domain.KindConflict,
			fmt.Sprintf("event has %d tickets booked", e.booked))
	}

	e.retired = true
	return nil
}

// Reopen undoes Retire.
func (l *Ledger) Reopen(eventID int64) {
	l.mu.RLock()
	e, ok := l.pools[eventID]
	l.mu.RUnlock()

	if !ok {
		return
	}

	e.mu.Lock()
	e.retired = false
	e.mu.Unlock()
}

// Drop forgets the event entirely.
func (l *Ledger) Drop(eventID int64) {
	l.mu.Lock()
	delete(l.pools, eventID)
	l.mu.Unlock()
}

// Tracked lists the ids of every pool currently held in memory.
func (l *Ledger) Tracked() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]int64, 0, len(l.pools))
	for id := range l.pools {
		ids = append(ids, id)
	}
	return ids
}
