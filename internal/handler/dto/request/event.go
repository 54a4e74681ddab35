package request

import (
	"strings"

	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/pkg/timeutil"
)

type SlotSpecRequest struct {
	StartTime   timeutil.UTCTime `json:"start_time" binding:"required"`
	MaxBookings int32            `json:"max_bookings" binding:"required,min=1"`
}

type CreateEventRequest struct {
	Title       string            `json:"title" binding:"required,min=3,max=100"`
	Description *string           `json:"description,omitempty" binding:"omitempty,max=500"`
	Slots       []SlotSpecRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r CreateEventRequest) GetDescription() string {
	if r.Description == nil {
		return ""
	}
	return strings.TrimSpace(*r.Description)
}

func (r CreateEventRequest) ToSlotSpecs() []event.SlotSpec {
	specs := make([]event.SlotSpec, len(r.Slots))
	for i, s := range r.Slots {
		specs[i] = event.SlotSpec{
			StartTime:   s.StartTime.Time,
			MaxBookings: s.MaxBookings,
		}
	}
	return specs
}
