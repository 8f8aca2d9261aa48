// Package civiltime resolves wall-clock time in a fixed civil timezone.
//
// Values are stored "as local": the returned time.Time is labeled UTC but its
// calendar fields are the civil wall-clock fields. A value read back from
// storage is already civil time and must not be shifted again. Existing rows
// in the attendance tables follow this convention.
package civiltime

import (
	"fmt"
	"time"
)

// Resolver produces civil timestamps for a fixed UTC offset.
type Resolver struct {
	offset time.Duration
	now    func() time.Time
}

// NewResolver creates a resolver for UTC+offsetHours. A nil now uses time.Now.
func NewResolver(offsetHours int, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		offset: time.Duration(offsetHours) * time.Hour,
		now:    now,
	}
}

// Now returns the current civil wall-clock time labeled as UTC.
func (r *Resolver) Now() time.Time {
	return r.now().UTC().Add(r.offset)
}

// Today returns civil midnight of the current civil day, labeled as UTC.
func (r *Resolver) Today() time.Time {
	return StartOfDay(r.Now())
}

// Offset returns the fixed UTC offset of the civil timezone.
func (r *Resolver) Offset() time.Duration {
	return r.offset
}

// Label returns the short zone name used in user-facing messages.
func (r *Resolver) Label() string {
	switch r.offset {
	case 7 * time.Hour:
		return "WIB"
	case 8 * time.Hour:
		return "WITA"
	case 9 * time.Hour:
		return "WIT"
	}
	return fmt.Sprintf("UTC%+d", int(r.offset/time.Hour))
}

// StartOfDay truncates a civil time to midnight of the same civil day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns midnight of the first day of t's civil month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// Clock formats the hour and minute of a civil time as HH:MM.
func Clock(t time.Time) string {
	return t.Format("15:04")
}
