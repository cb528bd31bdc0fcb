// Package mapview computes the camera placement and the marker set of the
// location map.
package mapview

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/locationboard/schema"
)

const (
	// DefaultZoom is the minimum zoom used when there is nothing to show
	DefaultZoom = 2
	// PointZoom is the street level zoom of a single location
	PointZoom = 13
	// BoundsPadding keeps the markers on the edge of the bounds visible
	BoundsPadding = 50

	popupTimeLayout = "1/2/2006, 3:04:05 PM"
)

// DefaultCenter is the center of the wide-area view
var DefaultCenter = schema.Location{Latitude: 20, Longitude: 0}

type Kind string

const (
	KindDefault Kind = "default"
	KindPoint   Kind = "point"
	KindBounds  Kind = "bounds"
)

// LatLng is the [lat, lng] pair the map widget consumes
type LatLng [2]float64

func toLatLng(l schema.Location) *LatLng {
	return &LatLng{l.Latitude, l.Longitude}
}

// View is the camera placement of the map. A point or default view sets
// Center and Zoom, a bounds view sets Bounds and Padding.
type View struct {
	Kind    Kind           `json:"kind"`
	Center  *LatLng        `json:"center,omitempty"`
	Zoom    int            `json:"zoom,omitempty"`
	Bounds  *schema.Bounds `json:"bounds,omitempty"`
	Padding []int          `json:"padding,omitempty"`
}

func DefaultView() View {
	return View{
		Kind:   KindDefault,
		Center: toLatLng(DefaultCenter),
		Zoom:   DefaultZoom,
	}
}

// ValidLocations drops the records without usable coordinates
func ValidLocations(records []schema.LocationRecord) []schema.LocationRecord {
	valid := make([]schema.LocationRecord, 0, len(records))
	for _, r := range records {
		if r.HasValidCoordinates() {
			valid = append(valid, r)
		}
	}
	return valid
}

// Compute returns the camera placement of the records. Records without
// usable coordinates are ignored; when none is left the default view is
// returned.
func Compute(records []schema.LocationRecord) View {
	valid := ValidLocations(records)

	switch len(valid) {
	case 0:
		return DefaultView()
	case 1:
		return View{
			Kind:   KindPoint,
			Center: toLatLng(valid[0].Location()),
			Zoom:   PointZoom,
		}
	}

	locations := make([]schema.Location, 0, len(valid))
	for _, r := range valid {
		locations = append(locations, r.Location())
	}

	bounds, ok := schema.BoundsOf(locations)
	if !ok {
		return DefaultView()
	}

	return View{
		Kind:    KindBounds,
		Bounds:  &bounds,
		Padding: []int{BoundsPadding, BoundsPadding},
	}
}

// Marker is a point marker of one record with its popup text
type Marker struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Popup     string  `json:"popup"`
}

// Markers returns one marker per record with usable coordinates. Popup
// times are rendered in loc.
func Markers(records []schema.LocationRecord, loc *time.Location) []Marker {
	if loc == nil {
		loc = time.UTC
	}

	valid := ValidLocations(records)
	markers := make([]Marker, 0, len(valid))
	for _, r := range valid {
		markers = append(markers, Marker{
			ID:        r.ID,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Popup:     popupText(r, loc),
		})
	}
	return markers
}

func popupText(r schema.LocationRecord, loc *time.Location) string {
	when := ""
	if r.HasValidTimestamp() {
		when = r.Time().In(loc).Format(popupTimeLayout)
	}
	return fmt.Sprintf("Lat: %.4f, Lng: %.4f <br />Time: %s", r.Latitude, r.Longitude, when)
}
