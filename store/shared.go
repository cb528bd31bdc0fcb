package store

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/locationboard/external/unidb"
	"github.com/bitmark-inc/locationboard/schema"
)

// sharedStore reads one table holding the locations of every email
type sharedStore struct {
	client unidb.Client
	table  string
}

func (s *sharedStore) records(ctx context.Context) ([]schema.LocationRecord, error) {
	rows, err := s.client.Rows(ctx, s.table)
	if err != nil {
		return nil, fmt.Errorf("list shared locations: %w", err)
	}

	records := make([]schema.LocationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ParseLocationRow(row))
	}
	return records, nil
}

func (s *sharedStore) ListEmails(ctx context.Context) ([]string, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(records))
	for _, r := range records {
		emails = append(emails, r.Email)
	}
	return distinctEmails(emails), nil
}

// ListUsers synthesizes one user per distinct email, identified by the
// first entry of that email
func (s *sharedStore) ListUsers(ctx context.Context) ([]schema.UserRecord, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	users := make([]schema.UserRecord, 0)
	for _, r := range records {
		if r.Email == "" {
			continue
		}
		if _, ok := seen[r.Email]; ok {
			continue
		}
		seen[r.Email] = struct{}{}
		users = append(users, schema.UserRecord{ID: r.ID, Email: r.Email})
	}
	return users, nil
}

func (s *sharedStore) ListLocationsForEmail(ctx context.Context, email string) ([]schema.LocationRecord, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}

	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]schema.LocationRecord, 0)
	for _, r := range records {
		if r.Email == email {
			result = append(result, r)
		}
	}
	return result, nil
}
