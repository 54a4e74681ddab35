// Package timeutil is the single place where external timestamps become
// internal instants. Every boundary that parses a timestamp goes through
// ParseInstant so that a value without an explicit zone is read as UTC,
// never as server-local time.
package timeutil

import (
	"strings"
	"time"

	"bookmyslot/internal/pkg/errs"
)

var ErrInvalidInstant = errs.New("invalid timestamp format")

// Layouts accepted at the boundary. The zone-less layouts are interpreted
// as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseInstant parses an external timestamp and normalizes it to UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Mark(errs.New("cannot parse "+s), ErrInvalidInstant)
}

// ToUTC normalizes an already-parsed time to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// UTCTime is a time.Time that unmarshals through ParseInstant. Request DTOs
// use it so that clients sending zone-less timestamps get UTC semantics
// instead of a parse error or a local-time guess.
type UTCTime struct {
	time.Time
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseInstant(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.UTC().Format(time.RFC3339) + `"`), nil
}
