package submissions

import "time"

// CountByKey is one bucket of a grouped count.
type CountByKey struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DailyCount is the number of submissions created on a calendar day (UTC).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Report aggregates submissions over a time range.
type Report struct {
	From           time.Time        `json:"from"`
	To             time.Time        `json:"to"`
	Total          int64            `json:"total"`
	ByStatus       map[Status]int64 `json:"byStatus"`
	ByConstituency []CountByKey     `json:"byConstituency"`
	Daily          []DailyCount     `json:"daily"`
}

// ReportRange bounds a report; zero values mean the last 30 days.
type ReportRange struct {
	From time.Time
	To   time.Time
}

// DefaultReportDays is the window used when no range is given.
const DefaultReportDays = 30

// Normalize fills missing bounds relative to now and orders them.
func (r ReportRange) Normalize(now time.Time) ReportRange {
	if r.To.IsZero() {
		r.To = now
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, 0, -DefaultReportDays)
	}
	if r.From.After(r.To) {
		r.From, r.To = r.To, r.From
	}
	return r
}
