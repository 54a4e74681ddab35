//go:build unit

package event_test

import (
	"testing"
	"time"

	"bookmyslot/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func makeSlot(start time.Time, max, current int32) *event.Slot {
	return event.ReconstructSlot(uuid.New(), uuid.New(), start, max, current)
}

func TestSlotStatusAt(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		max      int32
		current  int32
		expected event.SlotStatus
	}{
		{
			name:     "future with capacity",
			start:    statusNow.Add(time.Hour),
			max:      10,
			current:  3,
			expected: event.SlotStatusOpen,
		},
		{
			name:     "future at capacity",
			start:    statusNow.Add(time.Hour),
			max:      10,
			current:  10,
			expected: event.SlotStatusFull,
		},
		{
			name:     "start before now",
			start:    statusNow.Add(-time.Hour),
			max:      10,
			current:  0,
			expected: event.SlotStatusPast,
		},
		{
			name:     "start exactly now",
			start:    statusNow,
			max:      10,
			current:  0,
			expected: event.SlotStatusPast,
		},
		{
			name:     "past takes precedence over full",
			start:    statusNow.Add(-time.Hour),
			max:      5,
			current:  5,
			expected: event.SlotStatusPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := makeSlot(tt.start, tt.max, tt.current)
			assert.Equal(t, tt.expected, slot.StatusAt(statusNow))
		})
	}
}

func TestSlotAvailable(t *testing.T) {
	assert.Equal(t, int32(7), makeSlot(statusNow, 10, 3).Available())
	assert.Equal(t, int32(0), makeSlot(statusNow, 5, 5).Available())
}

func TestEventDerivedFields(t *testing.T) {
	eventID := uuid.New()
	build := func(slots ...*event.Slot) *event.Event {
		return event.ReconstructEvent(eventID, "Derived", "", statusNow, slots)
	}

	t.Run("totals and availability sum over slots", func(t *testing.T) {
		e := build(
			makeSlot(statusNow.Add(time.Hour), 10, 4),
			makeSlot(statusNow.Add(2*time.Hour), 5, 5),
		)
		assert.Equal(t, 2, e.TotalSlots())
		assert.Equal(t, int32(6), e.AvailableSlots())
	})

	t.Run("past only when every slot is past", func(t *testing.T) {
		allPast := build(
			makeSlot(statusNow.Add(-2*time.Hour), 10, 0),
			makeSlot(statusNow.Add(-time.Hour), 10, 0),
		)
		assert.True(t, allPast.IsPastAt(statusNow))

		mixed := build(
			makeSlot(statusNow.Add(-time.Hour), 10, 0),
			makeSlot(statusNow.Add(time.Hour), 10, 0),
		)
		assert.False(t, mixed.IsPastAt(statusNow))
	})

	t.Run("zero slots is never past", func(t *testing.T) {
		assert.False(t, build().IsPastAt(statusNow))
	})

	t.Run("earliest and latest slot starts", func(t *testing.T) {
		first := statusNow.Add(time.Hour)
		last := statusNow.Add(3 * time.Hour)
		e := build(
			makeSlot(last, 10, 0),
			makeSlot(first, 10, 0),
			makeSlot(statusNow.Add(2*time.Hour), 10, 0),
		)

		earliest, ok := e.EarliestSlotStart()
		require.True(t, ok)
		assert.Equal(t, first, earliest)

		latest, ok := e.LatestSlotStart()
		require.True(t, ok)
		assert.Equal(t, last, latest)

		_, ok = build().EarliestSlotStart()
		assert.False(t, ok)
		_, ok = build().LatestSlotStart()
		assert.False(t, ok)
	})
}
