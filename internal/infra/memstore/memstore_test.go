//go:build unit

package memstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/infra"
	"bookmyslot/internal/infra/memstore"
	"bookmyslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func seedEvent(t *testing.T, store *memstore.Store, b *builder.EventBuilder) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	e, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), e))

	slotIDs := make([]uuid.UUID, len(e.Slots()))
	for i, s := range e.Slots() {
		slotIDs[i] = s.ID()
	}
	return e.ID(), slotIDs
}

func newBooking(t *testing.T, slotID uuid.UUID, email string) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(slotID, "Alice Smith", email, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return b
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores event and slots", func(t *testing.T) {
		store := memstore.New()
		_, slotIDs := seedEvent(t, store, builder.NewEventBuilder())

		for _, id := range slotIDs {
			slot, err := store.SlotByID(ctx, id)
			require.NoError(t, err)
			assert.Zero(t, slot.CurrentBookings())
		}
	})

	t.Run("rejects a duplicate event ID", func(t *testing.T) {
		store := memstore.New()
		e, err := builder.NewEventBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, store.Create(ctx, e))
		err = store.Create(ctx, e)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestStore_SlotByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown slot", func(t *testing.T) {
		store := memstore.New()
		_, err := store.SlotByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("returns a snapshot, not live state", func(t *testing.T) {
		store := memstore.New()
		_, slotIDs := seedEvent(t, store, builder.NewEventBuilder())

		before, err := store.SlotByID(ctx, slotIDs[0])
		require.NoError(t, err)

		require.NoError(t, store.Reserve(ctx, newBooking(t, slotIDs[0], "alice@example.com")))

		assert.Zero(t, before.CurrentBookings())

		after, err := store.SlotByID(ctx, slotIDs[0])
		require.NoError(t, err)
		assert.Equal(t, int32(1), after.CurrentBookings())
	})
}

func TestStore_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("kinds for each failure", func(t *testing.T) {
		store := memstore.New()
		b := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Slots[0].MaxBookings = 1
		})
		_, slotIDs := seedEvent(t, store, b)

		err := store.Reserve(ctx, newBooking(t, uuid.New(), "alice@example.com"))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		require.NoError(t, store.Reserve(ctx, newBooking(t, slotIDs[0], "alice@example.com")))

		err = store.Reserve(ctx, newBooking(t, slotIDs[0], "alice@example.com"))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

		err = store.Reserve(ctx, newBooking(t, slotIDs[0], "bob@example.com"))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("concurrent reserves stop exactly at capacity", func(t *testing.T) {
		const capacity = 3
		const contenders = 30

		store := memstore.New()
		b := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Slots = b.Slots[:1]
			b.Slots[0].MaxBookings = capacity
		})
		_, slotIDs := seedEvent(t, store, b)
		slotID := slotIDs[0]

		granted := make(chan struct{}, contenders)
		var g errgroup.Group
		for i := 0; i < contenders; i++ {
			bk := newBooking(t, slotID, fmt.Sprintf("user%03d@example.com", i))
			g.Go(func() error {
				err := store.Reserve(context.Background(), bk)
				switch {
				case err == nil:
					granted <- struct{}{}
					return nil
				case infra.IsKind(err, infra.KindConflict):
					return nil
				default:
					return err
				}
			})
		}
		require.NoError(t, g.Wait())
		close(granted)

		assert.Len(t, granted, capacity)

		slot, err := store.SlotByID(ctx, slotID)
		require.NoError(t, err)
		assert.Equal(t, int32(capacity), slot.CurrentBookings())
		assert.Zero(t, slot.Available())

		// Ledger agrees with the counter
		reads := memstore.NewBookingReadStore(store)
		views, err := reads.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, views, capacity)
	})

	t.Run("concurrent reads during reserves see consistent counters", func(t *testing.T) {
		store := memstore.New()
		b := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Slots = b.Slots[:1]
			b.Slots[0].MaxBookings = 100
		})
		eventID, slotIDs := seedEvent(t, store, b)
		slotID := slotIDs[0]

		eventReads := memstore.NewEventReadStore(store)
		var g errgroup.Group
		for i := 0; i < 20; i++ {
			bk := newBooking(t, slotID, fmt.Sprintf("user%03d@example.com", i))
			g.Go(func() error {
				return store.Reserve(context.Background(), bk)
			})
			g.Go(func() error {
				e, err := eventReads.FindByID(context.Background(), eventID)
				if err != nil {
					return err
				}
				c := e.Slots()[0].CurrentBookings()
				if c < 0 || c > 100 {
					return fmt.Errorf("counter out of range: %d", c)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		slot, err := store.SlotByID(ctx, slotID)
		require.NoError(t, err)
		assert.Equal(t, int32(20), slot.CurrentBookings())
	})
}

func TestBookingReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID joins display data", func(t *testing.T) {
		store := memstore.New()
		b := builder.NewEventBuilder()
		eventID, slotIDs := seedEvent(t, store, b)

		bk := newBooking(t, slotIDs[0], "alice@example.com")
		require.NoError(t, store.Reserve(ctx, bk))

		reads := memstore.NewBookingReadStore(store)
		view, err := reads.FindByID(ctx, bk.ID())
		require.NoError(t, err)

		assert.Equal(t, bk.ID(), view.ID)
		assert.Equal(t, eventID, view.EventID)
		assert.Equal(t, b.Title, view.EventTitle)
		require.NotNil(t, view.EventDescription)
		assert.Equal(t, b.Description, *view.EventDescription)
		assert.Equal(t, b.Slots[0].StartTime, view.SlotStartTime)
	})

	t.Run("FindByID unknown booking", func(t *testing.T) {
		store := memstore.New()
		reads := memstore.NewBookingReadStore(store)
		_, err := reads.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindByUserEmail is exact-match", func(t *testing.T) {
		store := memstore.New()
		_, slotIDs := seedEvent(t, store, builder.NewEventBuilder())

		require.NoError(t, store.Reserve(ctx, newBooking(t, slotIDs[0], "alice@example.com")))
		require.NoError(t, store.Reserve(ctx, newBooking(t, slotIDs[1], "alice@example.com")))
		require.NoError(t, store.Reserve(ctx, newBooking(t, slotIDs[0], "bob@example.com")))

		reads := memstore.NewBookingReadStore(store)

		views, err := reads.FindByUserEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Len(t, views, 2)

		views, err = reads.FindByUserEmail(ctx, "Alice@example.com")
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestEventReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAll orders by creation time", func(t *testing.T) {
		store := memstore.New()
		first := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Title = "First Event"
		})
		second := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Title = "Second Event"
			b.Now = first.Now.Add(time.Minute)
			b.Slots[0].StartTime = b.Now.Add(24 * time.Hour)
			b.Slots[1].StartTime = b.Now.Add(48 * time.Hour)
		})
		seedEvent(t, store, first)
		seedEvent(t, store, second)

		reads := memstore.NewEventReadStore(store)
		events, err := reads.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "First Event", events[0].Title())
		assert.Equal(t, "Second Event", events[1].Title())
	})

	t.Run("FindByID unknown event", func(t *testing.T) {
		store := memstore.New()
		reads := memstore.NewEventReadStore(store)
		_, err := reads.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
