package unidb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/locationboard/external/unidb"
)

const contractKey = "e83b7ac8-contract"

func newTestClient(t *testing.T, handler http.HandlerFunc) (unidb.Client, tally.TestScope) {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	scope := tally.NewTestScope("", map[string]string{})
	c, err := unidb.New(ts.URL+"/", contractKey, ts.Client(), scope)
	require.NoError(t, err)
	return c, scope
}

func counterValue(scope tally.TestScope, name string, tags map[string]string) int64 {
	var total int64
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() != name {
			continue
		}
		match := true
		for k, v := range tags {
			if c.Tags()[k] != v {
				match = false
			}
		}
		if match {
			total += c.Value()
		}
	}
	return total
}

func TestRows(t *testing.T) {
	c, scope := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+contractKey+"/data/locations_a@b.com/all", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"data":[
			{"entry_id":"1","data":{"email":"a@b.com","latitude":"10.5","longitude":"20.25","timestamp":"1715000000000"}},
			{"entry_id":2,"data":{"email":"a@b.com","latitude":11,"longitude":null,"timestamp":"x"}}
		]}`))
	})

	rows, err := c.Rows(context.Background(), "locations_a@b.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, unidb.Value("1"), rows[0].EntryID)
	assert.Equal(t, "10.5", rows[0].Field("latitude"))
	assert.Equal(t, "1715000000000", rows[0].Field("timestamp"))

	assert.Equal(t, unidb.Value("2"), rows[1].EntryID)
	assert.Equal(t, "11", rows[1].Field("latitude"))
	assert.Equal(t, "", rows[1].Field("longitude"))
	assert.Equal(t, "", rows[1].Field("missing"))

	assert.Equal(t, int64(1), counterValue(scope, "unidb.requests", nil))
}

func TestRowsWithoutData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	rows, err := c.Rows(context.Background(), "USER")
	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRowsToleratesMalformedLeaves(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"entry_id":"1","data":{"email":"a@b.com","latitude":"10.5","longitude":"20.25","timestamp":"1715000000000"}},
			{"entry_id":"2","data":{"email":"a@b.com","latitude":true,"longitude":{"x":1},"timestamp":[1,2]}}
		]}`))
	})

	rows, err := c.Rows(context.Background(), "locations_a@b.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "10.5", rows[0].Field("latitude"))
	assert.Equal(t, "20.25", rows[0].Field("longitude"))

	assert.Equal(t, unidb.Value("2"), rows[1].EntryID)
	assert.Equal(t, "a@b.com", rows[1].Field("email"))
	assert.Equal(t, "", rows[1].Field("latitude"))
	assert.Equal(t, "", rows[1].Field("longitude"))
	assert.Equal(t, "", rows[1].Field("timestamp"))
}

func TestRowsNotFound(t *testing.T) {
	c, scope := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	})

	rows, err := c.Rows(context.Background(), "locations_nobody@b.com")
	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, unidb.ErrTableNotFound))
	assert.Equal(t, int64(1), counterValue(scope, "unidb.errors", map[string]string{"kind": "not_found"}))
}

func TestRowsServerError(t *testing.T) {
	c, scope := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Rows(context.Background(), "USER")
	require.Error(t, err)

	var fetchErr *unidb.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, "USER", fetchErr.Table)
	assert.False(t, errors.Is(err, unidb.ErrTableNotFound))
	assert.Equal(t, int64(1), counterValue(scope, "unidb.errors", map[string]string{"kind": "status"}))
}

func TestRowsMalformedJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	})

	_, err := c.Rows(context.Background(), "USER")
	var parseErr *unidb.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "USER", parseErr.Table)
}

func TestRowsCancelledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Rows(ctx, "USER")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewWithoutBaseURL(t *testing.T) {
	c, err := unidb.New("", contractKey, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, c)
}
