package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrUserNameLength = errors.New("user name must be between 2 and 100 characters")
	ErrEmptyUserEmail = errors.New("user email must not be empty")
)

const (
	MinUserNameLength = 2
	MaxUserNameLength = 100
)

// Booking is an immutable entry in the ledger. There is no cancellation or
// edit; a booking exists exactly as granted.
type Booking struct {
	id        uuid.UUID
	slotID    uuid.UUID
	userName  string
	userEmail string
	bookedAt  time.Time
}

// NewBooking validates the non-empty rules only; email format is a
// boundary concern and is not re-checked here.
func NewBooking(slotID uuid.UUID, userName, userEmail string, now time.Time) (*Booking, error) {
	userName = strings.TrimSpace(userName)
	if l := utf8.RuneCountInString(userName); l < MinUserNameLength || l > MaxUserNameLength {
		return nil, ErrUserNameLength
	}

	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, ErrEmptyUserEmail
	}

	return &Booking{
		id:        uuid.New(),
		slotID:    slotID,
		userName:  userName,
		userEmail: userEmail,
		bookedAt:  now.UTC(),
	}, nil
}

func ReconstructBooking(id, slotID uuid.UUID, userName, userEmail string, bookedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		slotID:    slotID,
		userName:  userName,
		userEmail: userEmail,
		bookedAt:  bookedAt.UTC(),
	}
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) SlotID() uuid.UUID   { return b.slotID }
func (b *Booking) UserName() string    { return b.userName }
func (b *Booking) UserEmail() string   { return b.userEmail }
func (b *Booking) BookedAt() time.Time { return b.bookedAt }
