package booking

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects how wide a reporting window is.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity converts a string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(GranularityDay):
		return GranularityDay, nil
	case string(GranularityMonth):
		return GranularityMonth, nil
	case string(GranularityYear):
		return GranularityYear, nil
	default:
		return "", fmt.Errorf("invalid report granularity: %s", s)
	}
}

// ReportWindow buckets bookings by calendar period around a reference date.
// It has no identity and is never persisted.
type ReportWindow struct {
	Granularity Granularity
	Reference   time.Time
}

// Contains reports whether a calendar date falls inside the window: the year
// must always match the reference; month and day are additionally required as
// the granularity narrows.
func (w ReportWindow) Contains(date time.Time) bool {
	if date.Year() != w.Reference.Year() {
		return false
	}
	if w.Granularity == GranularityYear {
		return true
	}
	if date.Month() != w.Reference.Month() {
		return false
	}
	if w.Granularity == GranularityMonth {
		return true
	}
	return date.Day() == w.Reference.Day()
}

// Report is the fixed-shape tally produced for a reporting window.
type Report struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
	Cricket  int `json:"cricket"`
	Football int `json:"football"`
}

// BuildReport tallies the bookings falling inside the window. Anything whose
// status is neither approved nor rejected counts as pending, so
// Approved+Rejected+Pending always equals Total. Ground types are matched
// case-insensitively; unrecognized ones land in neither sport bucket, so
// Cricket+Football may be less than Total. The aggregator is stateless; any
// change to the input, granularity, or reference date means a full re-run.
func BuildReport(bookings []*Booking, window ReportWindow) Report {
	var r Report
	for _, b := range bookings {
		if !window.Contains(b.Date()) {
			continue
		}
		r.Total++

		switch b.Status() {
		case StatusApproved:
			r.Approved++
		case StatusRejected:
			r.Rejected++
		default:
			r.Pending++
		}

		switch GroundType(strings.ToLower(string(b.GroundType()))) {
		case GroundCricket:
			r.Cricket++
		case GroundFootball:
			r.Football++
		}
	}
	return r
}
