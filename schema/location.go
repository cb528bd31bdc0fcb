package schema

import (
	"encoding/json"
	"math"
	"time"
)

// InvalidTimestamp marks a record whose timestamp could not be parsed
const InvalidTimestamp int64 = math.MinInt64

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both coordinates are usable numbers
func (l Location) Valid() bool {
	return isFinite(l.Latitude) && isFinite(l.Longitude)
}

// LocationRecord is one normalized location observation of an email.
// Latitude and longitude are NaN when the upstream row was malformed.
type LocationRecord struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

func (r LocationRecord) Location() Location {
	return Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

func (r LocationRecord) HasValidCoordinates() bool {
	return r.Location().Valid()
}

func (r LocationRecord) HasValidTimestamp() bool {
	return r.Timestamp != InvalidTimestamp
}

// Time returns the record time in UTC. The zero time is returned for an
// invalid timestamp.
func (r LocationRecord) Time() time.Time {
	if !r.HasValidTimestamp() {
		return time.Time{}
	}
	return time.Unix(0, r.Timestamp*int64(time.Millisecond)).UTC()
}

type UserRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Bounds is the minimal axis-aligned rectangle containing a set of
// coordinates. It is encoded as [[minLat, minLng], [maxLat, maxLng]].
type Bounds struct {
	SouthWest Location
	NorthEast Location
}

// BoundsOf computes the bounding box of the valid locations. ok is false
// when there is no valid location.
func BoundsOf(locations []Location) (b Bounds, ok bool) {
	for _, l := range locations {
		if !l.Valid() {
			continue
		}

		if !ok {
			b = Bounds{SouthWest: l, NorthEast: l}
			ok = true
			continue
		}

		b.SouthWest.Latitude = math.Min(b.SouthWest.Latitude, l.Latitude)
		b.SouthWest.Longitude = math.Min(b.SouthWest.Longitude, l.Longitude)
		b.NorthEast.Latitude = math.Max(b.NorthEast.Latitude, l.Latitude)
		b.NorthEast.Longitude = math.Max(b.NorthEast.Longitude, l.Longitude)
	}

	return b, ok
}

func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([2][2]float64{
		{b.SouthWest.Latitude, b.SouthWest.Longitude},
		{b.NorthEast.Latitude, b.NorthEast.Longitude},
	})
}

func (b *Bounds) UnmarshalJSON(data []byte) error {
	var corners [2][2]float64
	if err := json.Unmarshal(data, &corners); err != nil {
		return err
	}

	b.SouthWest = Location{Latitude: corners[0][0], Longitude: corners[0][1]}
	b.NorthEast = Location{Latitude: corners[1][0], Longitude: corners[1][1]}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
