package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/locationboard/external/unidb"
	"github.com/bitmark-inc/locationboard/schema"
)

const (
	storeLogPrefix = "store"

	// VariantPerUser reads a user table and one locations_<email> table per user
	VariantPerUser = "per_user"
	// VariantShared reads every location from a single shared table
	VariantShared = "shared"

	DefaultSharedTable = "locations"
	DefaultUserTable   = "USER"

	perUserTablePrefix = "locations_"
)

var (
	ErrEmptyEmail     = errors.New("empty email")
	ErrUnknownVariant = errors.New("unknown source variant")
)

// LocationStore - data access layer of the location records
type LocationStore interface {
	// ListEmails returns the distinct emails known to the source
	ListEmails(ctx context.Context) ([]string, error)
	// ListUsers returns one record per known user
	ListUsers(ctx context.Context) ([]schema.UserRecord, error)
	// ListLocationsForEmail returns every location recorded for the email.
	// An absent table is an empty result, not an error.
	ListLocationsForEmail(ctx context.Context, email string) ([]schema.LocationRecord, error)
}

// Options - table names of the source
type Options struct {
	SharedTable string
	UserTable   string
}

// NewLocationStore returns the store implementation of the variant
func NewLocationStore(variant string, client unidb.Client, opts Options) (LocationStore, error) {
	if opts.SharedTable == "" {
		opts.SharedTable = DefaultSharedTable
	}
	if opts.UserTable == "" {
		opts.UserTable = DefaultUserTable
	}

	log.WithFields(log.Fields{
		"prefix":  storeLogPrefix,
		"variant": variant,
	}).Info("init location store")

	switch variant {
	case VariantPerUser:
		return &perUserStore{client: client, userTable: opts.UserTable}, nil
	case VariantShared, "":
		return &sharedStore{client: client, table: opts.SharedTable}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// ParseLocationRow converts a raw row into a location record. Numbers are
// read from the leading numeric part of a field. Unparsable
// coordinates become NaN and an unparsable timestamp becomes
// schema.InvalidTimestamp. Callers filter those records before use.
func ParseLocationRow(row unidb.Row) schema.LocationRecord {
	return schema.LocationRecord{
		ID:        string(row.EntryID),
		Email:     strings.TrimSpace(row.Field("email")),
		Latitude:  parseCoordinate(row.Field("latitude")),
		Longitude: parseCoordinate(row.Field("longitude")),
		Timestamp: parseTimestamp(row.Field("timestamp")),
	}
}

var (
	leadingFloat   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInteger = regexp.MustCompile(`^[+-]?\d+`)
)

// parseCoordinate reads the leading decimal number of s, so "10.5abc" is
// 10.5. NaN is returned when s does not start with a number.
func parseCoordinate(s string) float64 {
	prefix := leadingFloat.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseTimestamp reads the leading base 10 integer of s, so
// "1715000000000.0" is 1715000000000
func parseTimestamp(s string) int64 {
	prefix := leadingInteger.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return schema.InvalidTimestamp
	}

	ts, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return schema.InvalidTimestamp
	}
	return ts
}

// distinctEmails keeps the first-seen order and drops empty emails
func distinctEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	result := make([]string, 0, len(emails))
	for _, email := range emails {
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		result = append(result, email)
	}
	return result
}
