package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/turfbook/service-booking/pkg/domain"
)

// StatusFilter narrows a booking set by status. The zero-ish value "all"
// matches every status.
type StatusFilter string

// StatusFilterAll matches bookings of any status.
const StatusFilterAll StatusFilter = "all"

// ParseStatusFilter converts a string to a StatusFilter. An empty string
// defaults to "all".
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StatusFilterAll):
		return StatusFilterAll, nil
	case string(StatusPending), string(StatusApproved), string(StatusRejected):
		return StatusFilter(strings.ToLower(strings.TrimSpace(s))), nil
	default:
		return "", fmt.Errorf("invalid status filter: %s", s)
	}
}

// DateRange is an inclusive calendar-date range. From is anchored to local
// midnight and To to the end of its day.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FilterSpec describes how to narrow a booking set: by status, and
// optionally by an inclusive date range.
type FilterSpec struct {
	Status StatusFilter
	Range  *DateRange
}

// Validate rejects filters whose range starts after it ends. Invalid ranges are
// an error, never silently swapped.
func (f FilterSpec) Validate() error {
	if f.Range != nil && DateOnly(f.Range.From).After(DateOnly(f.Range.To)) {
		return domain.NewValidationError("date range start cannot be after end")
	}
	return nil
}

// Matches reports whether a single booking satisfies the filter.
func (f FilterSpec) Matches(b *Booking) bool {
	if f.Status != StatusFilterAll && b.Status() != BookingStatus(f.Status) {
		return false
	}
	if f.Range != nil {
		from := DateOnly(f.Range.From)
		toEnd := DateOnly(f.Range.To).Add(24*time.Hour - time.Nanosecond)
		d := b.Date()
		if d.Before(from) || d.After(toEnd) {
			return false
		}
	}
	return true
}

// Apply returns the subset of bookings satisfying the filter. The input is
// never mutated and its order is preserved. The result is a pure function of
// the snapshot and the filter.
func (f FilterSpec) Apply(bookings []*Booking) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}
