package event

import "time"

// Status derivation lives here and only here. The allocator pre-check and
// every read path call these functions, so the "past wins over full"
// precedence is defined exactly once. All functions are pure: same
// (entity, now) in, same status out.

type SlotStatus string

const (
	SlotStatusOpen SlotStatus = "open"
	SlotStatusFull SlotStatus = "full"
	SlotStatusPast SlotStatus = "past"
)

func (s SlotStatus) String() string {
	return string(s)
}

// StatusAt derives the display/gating status of a slot at the given
// instant. A slot whose start is at or before now is past regardless of
// remaining capacity.
func (s *Slot) StatusAt(now time.Time) SlotStatus {
	if !s.startTime.After(now) {
		return SlotStatusPast
	}
	if s.currentBookings >= s.maxBookings {
		return SlotStatusFull
	}
	return SlotStatusOpen
}

func (e *Event) TotalSlots() int {
	return len(e.slots)
}

// AvailableSlots sums remaining capacity across the event's slots. An
// event with zero slots has zero availability.
func (e *Event) AvailableSlots() int32 {
	var available int32
	for _, s := range e.slots {
		available += s.Available()
	}
	return available
}

// IsPastAt reports whether the event has at least one slot and every slot
// is past. A zero-slot event is never past.
func (e *Event) IsPastAt(now time.Time) bool {
	if len(e.slots) == 0 {
		return false
	}
	for _, s := range e.slots {
		if s.StatusAt(now) != SlotStatusPast {
			return false
		}
	}
	return true
}

// EarliestSlotStart returns the minimum start among the event's slots.
// The second return value is false for a zero-slot event; sorts treat
// that as infinitely late.
func (e *Event) EarliestSlotStart() (time.Time, bool) {
	if len(e.slots) == 0 {
		return time.Time{}, false
	}
	earliest := e.slots[0].startTime
	for _, s := range e.slots[1:] {
		if s.startTime.Before(earliest) {
			earliest = s.startTime
		}
	}
	return earliest, true
}

// LatestSlotStart returns the maximum start among the event's slots, or
// false for a zero-slot event (treated as infinitely early by sorts).
func (e *Event) LatestSlotStart() (time.Time, bool) {
	if len(e.slots) == 0 {
		return time.Time{}, false
	}
	latest := e.slots[0].startTime
	for _, s := range e.slots[1:] {
		if s.startTime.After(latest) {
			latest = s.startTime
		}
	}
	return latest, true
}
