package api

import (
	"fmt"
	"math"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/locationboard/schema"
	"github.com/bitmark-inc/locationboard/utils"
)

const (
	entryDateLayout   = "Jan 02, 2006"
	entryTimeLayout   = "3:04 PM"
	summaryDateLayout = "January 2, 2006"
	queryDateLayout   = "2006-01-02"
)

// locationEntry is a location card of the list. Unusable coordinates are
// null and an unusable timestamp leaves the date and time empty.
type locationEntry struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Timestamp     *int64   `json:"timestamp"`
	LatitudeText  string   `json:"latitude_text"`
	LongitudeText string   `json:"longitude_text"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func newLocationEntry(r schema.LocationRecord, loc *time.Location) locationEntry {
	entry := locationEntry{
		ID:            r.ID,
		Email:         r.Email,
		Latitude:      finite(r.Latitude),
		Longitude:     finite(r.Longitude),
		LatitudeText:  fmt.Sprintf("%.4f", r.Latitude),
		LongitudeText: fmt.Sprintf("%.4f", r.Longitude),
	}

	if r.HasValidTimestamp() {
		ts := r.Timestamp
		t := r.Time().In(loc)
		entry.Timestamp = &ts
		entry.Date = t.Format(entryDateLayout)
		entry.Time = t.Format(entryTimeLayout)
	}

	return entry
}

func locationEntries(records []schema.LocationRecord, loc *time.Location) []locationEntry {
	entries := make([]locationEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, newLocationEntry(r, loc))
	}
	return entries
}

// locationSummary is the status line above the list. total is the count
// before the day filter and shown the count after it.
func locationSummary(l *i18n.Localizer, total, shown int, day time.Time) string {
	switch {
	case total == 0:
		return utils.Localize(l, utils.MsgNoLocations, nil)
	case shown == 0 && !day.IsZero():
		return utils.Localize(l, utils.MsgNoLocationsOnDate, map[string]interface{}{
			"Date": day.Format(summaryDateLayout),
		})
	case !day.IsZero():
		return utils.Localize(l, utils.MsgShowingLocationsOnDate, map[string]interface{}{
			"Count": shown,
			"Date":  day.Format(summaryDateLayout),
		})
	default:
		return utils.Localize(l, utils.MsgShowingLocations, map[string]interface{}{
			"Count": shown,
		})
	}
}
