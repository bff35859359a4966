package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// TimestampLayout is the canonical wire and storage format for timestamps:
// ISO-8601 UTC with millisecond precision. Because every timestamp is rendered
// in this fixed-width UTC form, lexicographic comparison of the string form is
// equivalent to chronological comparison, which the list filters rely on.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a value object holding a point in time in its canonical string
// form. Timestamps are generated by the store at the moment of an operation,
// never supplied by callers.
//
// The zero value ("") represents "not set" and fails validation; lifecycle
// fields that have not happened yet are modeled as *Timestamp with nil.
type Timestamp string

// Now captures the current time as a canonical Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Format(TimestampLayout))
}

// TimestampFromString parses a canonical timestamp string.
// Returns an error if the string is not in TimestampLayout form.
func TimestampFromString(s string) (Timestamp, error) {
	if _, err := time.Parse(TimestampLayout, s); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	return Timestamp(s), nil
}

// ValidateTimestampBound checks a filter bound supplied by a caller. Bounds
// may be a full canonical timestamp or a date-only prefix such as
// "2025-06-01", which compares against stored values as a day boundary.
func ValidateTimestampBound(s string) error {
	if s == "" {
		return errs.NewValueIsRequiredError("timestamp bound")
	}
	if _, err := time.Parse(TimestampLayout, s); err == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timestamp bound", err)
	}
	return nil
}

// Validate checks that the timestamp carries a parseable canonical value.
func (t Timestamp) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("timestamp")
	}
	if _, err := time.Parse(TimestampLayout, string(t)); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	return nil
}

// String returns the canonical string form.
func (t Timestamp) String() string {
	return string(t)
}

// Time converts the timestamp back to a time.Time.
func (t Timestamp) Time() (time.Time, error) {
	parsed, err := time.Parse(TimestampLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", string(t), err)
	}
	return parsed, nil
}

// Before reports whether t is strictly earlier than other.
// Comparison is plain string ordering, valid by construction of the layout.
func (t Timestamp) Before(other Timestamp) bool {
	return t < other
}
