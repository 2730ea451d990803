package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, granularity Granularity, reference string) ReportWindow {
	t.Helper()
	return ReportWindow{Granularity: granularity, Reference: mustDate(t, reference)}
}

func TestBuildReport_MonthWindow(t *testing.T) {
	in := scenarioSet(t)

	report := BuildReport(in, window(t, GranularityMonth, "2024-03-15"))

	assert.Equal(t, Report{
		Total:    2,
		Approved: 1,
		Rejected: 0,
		Pending:  1,
		Cricket:  1,
		Football: 1,
	}, report)
}

func TestBuildReport_Granularities(t *testing.T) {
	in := []*Booking{
		reconstructWithStatus(t, "2024-03-10", StatusPending, GroundCricket),
		reconstructWithStatus(t, "2024-03-15", StatusApproved, GroundCricket),
		reconstructWithStatus(t, "2024-06-10", StatusApproved, GroundFootball),
		reconstructWithStatus(t, "2023-03-10", StatusRejected, GroundCricket),
	}

	tests := []struct {
		name      string
		window    ReportWindow
		wantTotal int
	}{
		{"day matches exact date", window(t, GranularityDay, "2024-03-10"), 1},
		{"day different day same month", window(t, GranularityDay, "2024-03-11"), 0},
		{"month matches whole month", window(t, GranularityMonth, "2024-03-01"), 2},
		{"month ignores other months", window(t, GranularityMonth, "2024-07-01"), 0},
		{"year matches whole year", window(t, GranularityYear, "2024-01-01"), 3},
		{"year previous year", window(t, GranularityYear, "2023-12-31"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(in, tt.window)
			assert.Equal(t, tt.wantTotal, report.Total)
		})
	}
}

func TestBuildReport_StatusTallyAlwaysSumsToTotal(t *testing.T) {
	now := time.Now().UTC()
	in := []*Booking{
		reconstructWithStatus(t, "2024-03-10", StatusApproved, GroundCricket),
		reconstructWithStatus(t, "2024-03-11", StatusRejected, GroundFootball),
		reconstructWithStatus(t, "2024-03-12", StatusPending, GroundCricket),
		// Unrecognized status counts as pending, the permissive default.
		ReconstructBooking(uuid.New(), "X", "x@example.com", "9876543210",
			mustDate(t, "2024-03-13"), "slot", GroundCricket, BookingStatus("weird"), 1, now, now),
		ReconstructBooking(uuid.New(), "Y", "y@example.com", "9876543210",
			mustDate(t, "2024-03-14"), "slot", GroundFootball, BookingStatus(""), 1, now, now),
	}

	report := BuildReport(in, window(t, GranularityMonth, "2024-03-01"))

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 1, report.Approved)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 3, report.Pending)
	assert.Equal(t, report.Total, report.Approved+report.Rejected+report.Pending)
}

func TestBuildReport_GroundTallyExcludesUnknown(t *testing.T) {
	now := time.Now().UTC()
	in := []*Booking{
		reconstructWithStatus(t, "2024-03-10", StatusPending, GroundCricket),
		reconstructWithStatus(t, "2024-03-10", StatusPending, GroundFootball),
		ReconstructBooking(uuid.New(), "X", "x@example.com", "9876543210",
			mustDate(t, "2024-03-10"), "slot", GroundType("hockey"), StatusPending, 1, now, now),
	}

	report := BuildReport(in, window(t, GranularityDay, "2024-03-10"))

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Cricket)
	assert.Equal(t, 1, report.Football)
	assert.LessOrEqual(t, report.Cricket+report.Football, report.Total)
}

func TestBuildReport_GroundTypeCaseInsensitive(t *testing.T) {
	now := time.Now().UTC()
	in := []*Booking{
		ReconstructBooking(uuid.New(), "X", "x@example.com", "9876543210",
			mustDate(t, "2024-03-10"), "slot", GroundType("Cricket"), StatusPending, 1, now, now),
		ReconstructBooking(uuid.New(), "Y", "y@example.com", "9876543210",
			mustDate(t, "2024-03-10"), "slot", GroundType("FOOTBALL"), StatusApproved, 1, now, now),
	}

	report := BuildReport(in, window(t, GranularityDay, "2024-03-10"))

	assert.Equal(t, 1, report.Cricket)
	assert.Equal(t, 1, report.Football)
	assert.Equal(t, report.Total, report.Cricket+report.Football)
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(nil, window(t, GranularityYear, "2024-01-01"))
	assert.Equal(t, Report{}, report)
}

func TestBuildReport_Recomputation(t *testing.T) {
	in := scenarioSet(t)
	w := window(t, GranularityMonth, "2024-03-15")

	first := BuildReport(in, w)
	second := BuildReport(in, w)
	require.Equal(t, first, second, "aggregation must be a pure function of its inputs")
}
