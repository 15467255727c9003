package attendance

import "github.com/shopspring/decimal"

// ClientStats summarises a client's attendance over a period
type ClientStats struct {
	Total          int64
	Present        int64
	Absent         int64
	Excused        int64
	AttendanceRate float64
}

// NewClientStats builds stats from per-status counts. The rate is the share of
// PRESENT marks in percent, rounded to two decimals, and 0 when there are no marks.
func NewClientStats(counts StatusCounts) ClientStats {
	stats := ClientStats{
		Present: counts[StatusPresent],
		Absent:  counts[StatusAbsent],
		Excused: counts[StatusExcused],
	}
	for _, n := range counts {
		stats.Total += n
	}
	if stats.Total == 0 {
		return stats
	}
	stats.AttendanceRate = decimal.NewFromInt(stats.Present).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(stats.Total)).
		Round(2).
		InexactFloat64()
	return stats
}
