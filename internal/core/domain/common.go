package domain

import "time"

// AuditFields holds standard audit information for stored records.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Window names a reporting time range measured against wall-clock "now".
type Window string

const (
	WindowToday Window = "TODAY"
	WindowWeek  Window = "WEEK"  // trailing 7 days
	WindowMonth Window = "MONTH" // calendar month containing now
)

// Bounds resolves the window to a half-open [from, to) interval relative to now.
func (w Window) Bounds(now time.Time) (time.Time, time.Time) {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7), now
	case WindowMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 1, 0)
	default: // WindowToday
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 0, 1)
	}
}

// Contains reports whether t falls inside the window's [from, to) interval.
func (w Window) Contains(t, now time.Time) bool {
	from, to := w.Bounds(now)
	return !t.Before(from) && t.Before(to)
}
