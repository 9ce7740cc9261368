package ledger_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ledger"
	"github.com/srgjo27/event_ticketing/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(pools ...domain.TicketPool) *ledger.Ledger {
	l := ledger.New(nil)
	for _, p := range pools {
		l.Track(p)
	}
	return l
}

func TestReserve_DebitsCapacity(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 100})

	require.NoError(t, l.Reserve(ctx, 1, 30))

	available, err := l.Available(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 70, available)
}

func TestReserve_InsufficientCapacityLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 20, BookedQuantity: 20})

	err := l.Reserve(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)

	pool, err := l.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, pool.BookedQuantity)
}

func TestReserve_RejectsNonPositiveQuantity(t *testing.T) {
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 5})

	assert.ErrorIs(t, l.Reserve(context.Background(), 1, 0), domain.ErrValidationFailed)
}

func TestReserve_UnknownEvent(t *testing.T) {
	err := newLedger().Reserve(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRelease_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 3})

	require.NoError(t, l.Release(ctx, 1, 5))

	pool, err := l.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, pool.BookedQuantity)
	assert.Equal(t, 10, pool.Available())
}

func TestReserveThenRelease_RestoresAvailability(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 50, BookedQuantity: 25})

	require.NoError(t, l.Reserve(ctx, 1, 25))
	require.NoError(t, l.Release(ctx, 1, 25))

	available, err := l.Available(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, available)
}

func TestReserve_ConcurrentCallersNeverOverbook(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10})

	var wg sync.WaitGroup
	var succeeded, rejected atomic.Int32

	for i := 0; i < 11; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Reserve(ctx, 1, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientCapacity):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(1), rejected.Load())

	pool, err := l.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, pool.BookedQuantity)
}

func TestReserve_ConcurrentMixedTrafficHoldsInvariant(t *testing.T) {
	ctx := context.Background()
	l := newLedger(
		domain.TicketPool{EventID: 1, TotalCapacity: 37},
		domain.TicketPool{EventID: 2, TotalCapacity: 5},
	)

	var wg sync.WaitGroup
	var reserved [3]atomic.Int64

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eventID := int64(i%2 + 1)
			qty := i%3 + 1
			if err := l.Reserve(ctx, eventID, qty); err == nil {
				reserved[eventID].Add(int64(qty))
				if i%4 == 0 {
					_ = l.Release(ctx, eventID, qty)
					reserved[eventID].Add(int64(-qty))
				}
			}
		}(i)
	}
	wg.Wait()

	for _, id := range []int64{1, 2} {
		pool, err := l.Snapshot(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pool.BookedQuantity, 0)
		assert.LessOrEqual(t, pool.BookedQuantity, pool.TotalCapacity)
		assert.Equal(t, int(reserved[id].Load()), pool.BookedQuantity)
	}
}

func TestLookup_LoadsLazilyOnce(t *testing.T) {
	ctx := context.Background()
	loader := mocks.NewTicketPoolRepository(t)
	loader.On("Load", ctx, int64(7)).
		Return(&domain.TicketPool{EventID: 7, TotalCapacity: 4, BookedQuantity: 1}, nil).
		Once()

	l := ledger.New(loader)

	require.NoError(t, l.Reserve(ctx, 7, 2))
	available, err := l.Available(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, available)
}

func TestLookup_PropagatesLoaderError(t *testing.T) {
	l := ledger.New(ledger.LoaderFunc(func(context.Context, int64) (*domain.TicketPool, error) {
		return nil, domain.ErrEventNotFound
	}))

	assert.ErrorIs(t, l.Ensure(context.Background(), 3), domain.ErrEventNotFound)
}

func TestTrack_FirstWriterWins(t *testing.T) {
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 4})
	l.Track(domain.TicketPool{EventID: 1, TotalCapacity: 99})

	available, err := l.Available(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 6, available)
}

func TestResize(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 6})

	previous, err := l.Resize(ctx, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 10, previous)

	_, err = l.Resize(ctx, 1, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = l.Resize(ctx, 1, -1)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	available, err := l.Available(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestRetire_BlockedWhileBooked(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 1})

	assert.ErrorIs(t, l.Retire(ctx, 1), domain.ErrConflict)
	assert.NoError(t, l.Reserve(ctx, 1, 1))
}

func TestRetire_ClosesReservationsUntilReopened(t *testing.T) {
	ctx := context.Background()
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10})

	require.NoError(t, l.Retire(ctx, 1))
	assert.ErrorIs(t, l.Reserve(ctx, 1, 1), domain.ErrEventNotFound)

	l.Reopen(1)
	assert.NoError(t, l.Reserve(ctx, 1, 1))
}

func TestDrop(t *testing.T) {
	l := newLedger(domain.TicketPool{EventID: 1, TotalCapacity: 10})
	assert.Equal(t, []int64{1}, l.Tracked())

	l.Drop(1)
	assert.Empty(t, l.Tracked())
	assert.ErrorIs(t, l.Ensure(context.Background(), 1), domain.ErrEventNotFound)
}
