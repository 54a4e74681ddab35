//go:build unit

package builder

import (
	"time"

	domevent "bookmyslot/internal/domain/event"
	reqdto "bookmyslot/internal/handler/dto/request"
	"bookmyslot/internal/pkg/timeutil"

	"github.com/google/uuid"
)

type EventBuilder struct {
	Title       string
	Description string
	Slots       []domevent.SlotSpec
	Now         time.Time
}

func NewEventBuilder() *EventBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &EventBuilder{
		Title:       "Go Conference",
		Description: "Annual community conference",
		Slots: []domevent.SlotSpec{
			{StartTime: now.Add(24 * time.Hour), MaxBookings: 10},
			{StartTime: now.Add(48 * time.Hour), MaxBookings: 5},
		},
		Now: now,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) BuildDomain() (*domevent.Event, error) {
	return domevent.NewEvent(b.Title, b.Description, b.Slots, b.Now)
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	slots := make([]reqdto.SlotSpecRequest, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = reqdto.SlotSpecRequest{
			StartTime:   timeutil.UTCTime{Time: s.StartTime},
			MaxBookings: s.MaxBookings,
		}
	}
	var description *string
	if b.Description != "" {
		d := b.Description
		description = &d
	}
	return reqdto.CreateEventRequest{
		Title:       b.Title,
		Description: description,
		Slots:       slots,
	}
}

// BuildReconstructed returns a persisted-shape event with fixed IDs, for
// read-side tests that bypass NewEvent validation.
func (b *EventBuilder) BuildReconstructed(counters ...int32) *domevent.Event {
	eventID := uuid.New()
	slots := make([]*domevent.Slot, len(b.Slots))
	for i, s := range b.Slots {
		var current int32
		if i < len(counters) {
			current = counters[i]
		}
		slots[i] = domevent.ReconstructSlot(uuid.New(), eventID, s.StartTime, s.MaxBookings, current)
	}
	return domevent.ReconstructEvent(eventID, b.Title, b.Description, b.Now, slots)
}
