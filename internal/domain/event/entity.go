package event

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrTitleLength        = errors.New("title must be between 3 and 100 characters")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrNoSlots            = errors.New("event requires at least one slot")
	ErrStartNotFuture     = errors.New("slot start time must be in the future")
	ErrInvalidCapacity    = errors.New("slot capacity must be at least 1")
)

const (
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// SlotSpec is the creation-time description of a slot. The slot set of an
// event is fixed at creation.
type SlotSpec struct {
	StartTime   time.Time
	MaxBookings int32
}

type Slot struct {
	id              uuid.UUID
	eventID         uuid.UUID
	startTime       time.Time
	maxBookings     int32
	currentBookings int32
}

type Event struct {
	id          uuid.UUID
	title       string
	description string
	createdAt   time.Time
	slots       []*Slot
}

// NewEvent validates and assembles an event with its slots. Every slot
// starts strictly after now and begins with a zero booking counter.
// Nothing is persisted here; a validation failure leaves no trace.
func NewEvent(title, description string, specs []SlotSpec, now time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if l := utf8.RuneCountInString(title); l < MinTitleLength || l > MaxTitleLength {
		return nil, ErrTitleLength
	}

	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if len(specs) == 0 {
		return nil, ErrNoSlots
	}

	eventID := uuid.New()
	slots := make([]*Slot, len(specs))
	for i, spec := range specs {
		if spec.MaxBookings < 1 {
			return nil, ErrInvalidCapacity
		}
		start := spec.StartTime.UTC()
		if !start.After(now) {
			return nil, ErrStartNotFuture
		}
		slots[i] = &Slot{
			id:              uuid.New(),
			eventID:         eventID,
			startTime:       start,
			maxBookings:     spec.MaxBookings,
			currentBookings: 0,
		}
	}

	return &Event{
		id:          eventID,
		title:       title,
		description: description,
		createdAt:   now.UTC(),
		slots:       slots,
	}, nil
}

func ReconstructEvent(id uuid.UUID, title, description string, createdAt time.Time, slots []*Slot) *Event {
	return &Event{
		id:          id,
		title:       title,
		description: description,
		createdAt:   createdAt.UTC(),
		slots:       slots,
	}
}

func ReconstructSlot(id, eventID uuid.UUID, startTime time.Time, maxBookings, currentBookings int32) *Slot {
	return &Slot{
		id:              id,
		eventID:         eventID,
		startTime:       startTime.UTC(),
		maxBookings:     maxBookings,
		currentBookings: currentBookings,
	}
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Description() string  { return e.description }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) Slots() []*Slot       { return e.slots }

func (s *Slot) ID() uuid.UUID          { return s.id }
func (s *Slot) EventID() uuid.UUID     { return s.eventID }
func (s *Slot) StartTime() time.Time   { return s.startTime }
func (s *Slot) MaxBookings() int32     { return s.maxBookings }
func (s *Slot) CurrentBookings() int32 { return s.currentBookings }

// Available is always derived from the authoritative counter, never cached.
func (s *Slot) Available() int32 {
	return s.maxBookings - s.currentBookings
}
