package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	SlotID    uuid.UUID `json:"slot_id" binding:"required"`
	UserName  string    `json:"user_name" binding:"required,min=2,max=100"`
	UserEmail string    `json:"user_email" binding:"required,email"`
}
