//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"bookmyslot/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	slotID := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewBooking(slotID, "Alice Smith", "alice@example.com", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, slotID, actual.SlotID())
		assert.Equal(t, "Alice Smith", actual.UserName())
		assert.Equal(t, "alice@example.com", actual.UserEmail())
		assert.Equal(t, now, actual.BookedAt())
	})

	t.Run("user name validation", func(t *testing.T) {
		tests := []struct {
			name     string
			userName string
			errIs    error
		}{
			{name: "minimum length", userName: "ab"},
			{name: "maximum length", userName: strings.Repeat("a", booking.MaxUserNameLength)},
			{name: "below minimum", userName: "a", errIs: booking.ErrUserNameLength},
			{name: "exceeds maximum", userName: strings.Repeat("a", booking.MaxUserNameLength+1), errIs: booking.ErrUserNameLength},
			{name: "whitespace only", userName: "   ", errIs: booking.ErrUserNameLength},
			{name: "too short after trimming", userName: " a ", errIs: booking.ErrUserNameLength},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				actual, err := booking.NewBooking(slotID, tt.userName, "alice@example.com", now)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := booking.NewBooking(slotID, "Alice Smith", "   ", now)
		assert.ErrorIs(t, err, booking.ErrEmptyUserEmail)
	})

	t.Run("trims name and email", func(t *testing.T) {
		actual, err := booking.NewBooking(slotID, "  Alice Smith  ", "  alice@example.com  ", now)
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", actual.UserName())
		assert.Equal(t, "alice@example.com", actual.UserEmail())
	})

	t.Run("distinct IDs per booking", func(t *testing.T) {
		b1, err1 := booking.NewBooking(slotID, "Alice Smith", "alice@example.com", now)
		b2, err2 := booking.NewBooking(slotID, "Alice Smith", "alice@example.com", now)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})

	t.Run("normalizes booked time to UTC", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		actual, err := booking.NewBooking(slotID, "Alice Smith", "alice@example.com", now.In(loc))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, actual.BookedAt().Location())
		assert.True(t, actual.BookedAt().Equal(now))
	})
}
