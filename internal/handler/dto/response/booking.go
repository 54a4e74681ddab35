package response

import (
	"time"

	"bookmyslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SlotID    uuid.UUID `json:"slot_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	BookedAt  time.Time `json:"booked_at"`
}

// BookingListResponse carries the read-path join for display: the owning
// slot's start and the event's title/description.
type BookingListResponse struct {
	ID               uuid.UUID `json:"id"`
	SlotID           uuid.UUID `json:"slot_id"`
	EventID          uuid.UUID `json:"event_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	BookedAt         time.Time `json:"booked_at"`
	EventTitle       string    `json:"event_title"`
	EventDescription *string   `json:"event_description,omitempty"`
	SlotStartTime    time.Time `json:"slot_start_time"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        view.ID,
		SlotID:    view.SlotID,
		UserName:  view.UserName,
		UserEmail: view.UserEmail,
		BookedAt:  view.BookedAt,
	}
}

func FromBookingViewEnriched(view *queries.BookingView) *BookingListResponse {
	return &BookingListResponse{
		ID:               view.ID,
		SlotID:           view.SlotID,
		EventID:          view.EventID,
		UserName:         view.UserName,
		UserEmail:        view.UserEmail,
		BookedAt:         view.BookedAt,
		EventTitle:       view.EventTitle,
		EventDescription: view.EventDescription,
		SlotStartTime:    view.SlotStartTime,
	}
}
