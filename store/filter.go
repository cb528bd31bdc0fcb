package store

import (
	"time"

	"github.com/bitmark-inc/locationboard/schema"
)

// FilterByDay keeps the records recorded on the calendar day of `day` in
// the given time zone. A zero day returns the records unchanged. Records
// without a valid timestamp never match a day.
func FilterByDay(records []schema.LocationRecord, day time.Time, loc *time.Location) []schema.LocationRecord {
	if day.IsZero() {
		return records
	}

	if loc == nil {
		loc = time.UTC
	}

	year, month, date := day.In(loc).Date()

	result := make([]schema.LocationRecord, 0, len(records))
	for _, r := range records {
		if !r.HasValidTimestamp() {
			continue
		}

		y, m, d := r.Time().In(loc).Date()
		if y == year && m == month && d == date {
			result = append(result, r)
		}
	}
	return result
}
