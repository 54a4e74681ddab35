package response

import (
	"time"

	"bookmyslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	EventID         uuid.UUID `json:"event_id"`
	StartTime       time.Time `json:"start_time"`
	MaxBookings     int32     `json:"max_bookings"`
	CurrentBookings int32     `json:"current_bookings"`
	Available       int32     `json:"available"`
	Status          string    `json:"status"`
}

type EventResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	TotalSlots     int            `json:"total_slots"`
	AvailableSlots int32          `json:"available_slots"`
	IsPast         bool           `json:"is_past"`
	Slots          []SlotResponse `json:"slots"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	slots := make([]SlotResponse, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = SlotResponse{
			ID:              s.ID,
			EventID:         s.EventID,
			StartTime:       s.StartTime,
			MaxBookings:     s.MaxBookings,
			CurrentBookings: s.CurrentBookings,
			Available:       s.Available,
			Status:          s.Status,
		}
	}

	return &EventResponse{
		ID:             view.ID,
		Title:          view.Title,
		Description:    view.Description,
		CreatedAt:      view.CreatedAt,
		TotalSlots:     view.TotalSlots,
		AvailableSlots: view.AvailableSlots,
		IsPast:         view.IsPast,
		Slots:          slots,
	}
}
