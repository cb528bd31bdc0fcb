package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func offsetOf(loc *time.Location) int {
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	return offset
}

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz1245 := GetLocation("GMT+12:45")
	assert.NotNil(t, tz1245)
	assert.Equal(t, "GMT+12:45", tz1245.String())

	tz945 := GetLocation("GMT+9:45")
	assert.NotNil(t, tz945)
	assert.Equal(t, "GMT+9:45", tz945.String())

	tz_8 := GetLocation("GMT-8")
	assert.NotNil(t, tz_8)
	assert.Equal(t, "GMT-8", tz_8.String())

	tz_1245 := GetLocation("GMT-12:45")
	assert.NotNil(t, tz_1245)
	assert.Equal(t, "GMT-12:45", tz_1245.String())

	tz_945 := GetLocation("GMT-9:45")
	assert.NotNil(t, tz_945)
	assert.Equal(t, "GMT-9:45", tz_945.String())
}

func TestGetLocationOffsets(t *testing.T) {
	assert.Equal(t, -5*60*60, offsetOf(GetLocation("GMT-5")))
	assert.Equal(t, 5*60*60+30*60, offsetOf(GetLocation("gmt+5:30")))

	// "+" decoded from a query string as a space
	assert.Equal(t, 8*60*60, offsetOf(GetLocation("GMT 8")))
}

func TestGetLocationNamedZones(t *testing.T) {
	assert.Equal(t, "UTC", GetLocation("utc").String())
	assert.Equal(t, "America/Bogota", GetLocation("America/Bogota").String())
}

func TestGetLocationUnknown(t *testing.T) {
	assert.Nil(t, GetLocation(""))
	assert.Nil(t, GetLocation("GMT+25"))
	assert.Nil(t, GetLocation("GMT+3:75"))
	assert.Nil(t, GetLocation("Mars/Olympus_Mons"))
}
