package event

import "time"

// WindowStart returns the lower bound of the "today" window: start of
// the current calendar day plus one hour. The Postgres repositories
// evaluate the same boundary store-side as
// `created_at > CURRENT_DATE + interval '1 hour'`; this helper exists
// for in-process callers and fakes and must stay in sync with that
// predicate.
func WindowStart(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Add(time.Hour)
}
