package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Slot errors
	ErrSlotNotFound = errors.New("slot not found")

	// Booking errors
	ErrSlotClosed       = errors.New("slot is closed for booking")
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
	ErrDuplicateBooking = errors.New("duplicate booking for slot")
	ErrBookingNotFound  = errors.New("booking not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
