package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/locationboard/external/unidb"
	"github.com/bitmark-inc/locationboard/schema"
)

// perUserStore reads a user table and a locations_<email> table per user
type perUserStore struct {
	client    unidb.Client
	userTable string
}

// LocationTable returns the name of the table holding the email's locations
func LocationTable(email string) string {
	return perUserTablePrefix + email
}

func (s *perUserStore) ListUsers(ctx context.Context) ([]schema.UserRecord, error) {
	rows, err := s.client.Rows(ctx, s.userTable)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]schema.UserRecord, 0, len(rows))
	for _, row := range rows {
		users = append(users, schema.UserRecord{
			ID:    string(row.EntryID),
			Email: strings.TrimSpace(row.Field("email")),
		})
	}
	return users, nil
}

func (s *perUserStore) ListEmails(ctx context.Context) ([]string, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	return distinctEmails(emails), nil
}

func (s *perUserStore) ListLocationsForEmail(ctx context.Context, email string) ([]schema.LocationRecord, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}

	table := LocationTable(email)
	rows, err := s.client.Rows(ctx, table)
	if err != nil {
		if errors.Is(err, unidb.ErrTableNotFound) {
			log.WithFields(log.Fields{
				"prefix": storeLogPrefix,
				"table":  table,
				"email":  email,
			}).Warn("location table not found, returning empty result")
			return []schema.LocationRecord{}, nil
		}
		return nil, fmt.Errorf("list locations of %s: %w", email, err)
	}

	records := make([]schema.LocationRecord, 0, len(rows))
	for _, row := range rows {
		r := ParseLocationRow(row)
		if r.Email == "" {
			r.Email = email
		}
		records = append(records, r)
	}
	return records, nil
}
