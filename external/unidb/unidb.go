package unidb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

const (
	logPrefix      = "unidb"
	defaultTimeout = 10 * time.Second
)

var (
	// ErrTableNotFound is returned when the API answers 404 for a table
	ErrTableNotFound = errors.New("table not found")
	errEmptyBaseURL  = errors.New("empty base url")
)

// FetchError is a non-2xx answer other than 404
type FetchError struct {
	Table      string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch table %s: %s", e.Table, e.Status)
}

// ParseError is a response body which is not the expected JSON document
type ParseError struct {
	Table string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode table %s: %s", e.Table, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Value is a leaf value of a row. The API sends strings, but numbers are
// kept as their literal text. Nulls, booleans, objects and arrays become an
// empty value so a malformed leaf never fails the whole table.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = ""
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value(n.String())
	default:
		*v = ""
	}
	return nil
}

// Row is one entry of a table
type Row struct {
	EntryID Value            `json:"entry_id"`
	Data    map[string]Value `json:"data"`
}

// Field returns the named field of the row, or an empty string
func (r Row) Field(name string) string {
	return string(r.Data[name])
}

type tableResponse struct {
	Data []Row `json:"data"`
}

// Client - interface to read tables of the remote tabular data API
type Client interface {
	Rows(ctx context.Context, table string) ([]Row, error)
}

type client struct {
	baseURL     string
	contractKey string
	httpClient  *http.Client
	scope       tally.Scope
}

// New - new remote table client. A nil http client or scope falls back to
// defaults.
func New(baseURL, contractKey string, httpClient *http.Client, scope tally.Scope) (Client, error) {
	if baseURL == "" {
		return nil, errEmptyBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	if scope == nil {
		scope = tally.NoopScope
	}

	return &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		contractKey: contractKey,
		httpClient:  httpClient,
		scope:       scope.SubScope(logPrefix),
	}, nil
}

func (c *client) tableURL(table string) string {
	// https://host/<contract>/data/<table>/all?format=json
	return fmt.Sprintf("%s/%s/data/%s/all?format=json",
		c.baseURL, url.PathEscape(c.contractKey), url.PathEscape(table))
}

// Rows fetches every row of a table
func (c *client) Rows(ctx context.Context, table string) ([]Row, error) {
	c.scope.Counter("requests").Inc(1)
	sw := c.scope.Timer("latency").Start()
	defer sw.Stop()

	req, err := http.NewRequest(http.MethodGet, c.tableURL(table), nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countError("transport")
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "error": err}).Error("request table")
		return nil, fmt.Errorf("request table %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.countError("not_found")
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table}).Warn("table not found")
		return nil, ErrTableNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.countError("status")
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "status": resp.StatusCode}).Error("unexpected response status")
		return nil, &FetchError{
			Table:      table,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.countError("transport")
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}

	var decoded tableResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.countError("parse")
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "error": err}).Error("decode table")
		return nil, &ParseError{Table: table, Err: err}
	}

	if decoded.Data == nil {
		return []Row{}, nil
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "rows": len(decoded.Data)}).Debug("table fetched")
	return decoded.Data, nil
}

func (c *client) countError(kind string) {
	c.scope.Tagged(map[string]string{"kind": kind}).Counter("errors").Inc(1)
}
