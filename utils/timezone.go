package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

var gmtOffsetPattern = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
	locations["GMT"] = time.FixedZone("GMT", 0)
	locations["UTC"] = time.UTC
}

// GetLocation returns a location of a GMT-X format timezone. Whole hours come
// from a pre-defined locations map, GMT+H:MM offsets are built on demand and
// any other value is looked up in the IANA database. nil is returned for an
// unknown timezone.
func GetLocation(timezone string) *time.Location {
	// a literal "+" in a query string arrives as a space
	tz := strings.ToUpper(strings.Replace(strings.TrimSpace(timezone), " ", "+", 1))
	if tz == "" {
		return nil
	}

	if loc, ok := locations[tz]; ok {
		return loc
	}

	if m := gmtOffsetPattern.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil
		}

		offset := hours*60*60 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(tz, offset)
	}

	if loc, err := time.LoadLocation(strings.TrimSpace(timezone)); err == nil {
		return loc
	}

	return nil
}
