//go:build unit

package builder

import (
	"time"

	reqdto "bookmyslot/internal/handler/dto/request"
	"bookmyslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	SlotID        uuid.UUID
	EventID       uuid.UUID
	UserName      string
	UserEmail     string
	BookedAt      time.Time
	EventTitle    string
	SlotStartTime time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		SlotID:        uuid.New(),
		EventID:       uuid.New(),
		UserName:      "Alice Smith",
		UserEmail:     "alice@example.com",
		BookedAt:      now,
		EventTitle:    "Go Conference",
		SlotStartTime: now.Add(24 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID:    b.SlotID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		SlotID:        b.SlotID,
		EventID:       b.EventID,
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		BookedAt:      b.BookedAt,
		EventTitle:    b.EventTitle,
		SlotStartTime: b.SlotStartTime,
	}
}
