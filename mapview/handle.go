package mapview

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/locationboard/schema"
)

const logPrefix = "mapview"

var (
	ErrStaleSelection = errors.New("selection superseded by a newer one")
	ErrDisposed       = errors.New("map handle disposed")
)

// Token identifies one selection of a handle. Later selections have
// greater tokens.
type Token uint64

// Update is the change a selection applies to the map
type Update struct {
	Token   Token    `json:"token"`
	Removed []string `json:"removed"`
	Markers []Marker `json:"markers"`
	View    View     `json:"view"`
}

// Handle owns the markers and the camera of one mounted map. A selection
// starts with Begin and its records are applied with Apply. The results of
// a selection which is not the latest one are discarded.
type Handle struct {
	id string

	mu       sync.Mutex
	latest   Token
	markers  []Marker
	view     View
	disposed bool
	lastUsed time.Time
}

// NewHandle mounts a map with the default view and no marker
func NewHandle(id string) *Handle {
	return &Handle{
		id:      id,
		markers: []Marker{},
		view:    DefaultView(),
	}
}

func (h *Handle) ID() string {
	return h.id
}

// Begin starts a new selection and supersedes every earlier one
func (h *Handle) Begin() (Token, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return 0, ErrDisposed
	}

	h.latest++
	return h.latest, nil
}

// Apply replaces the whole marker set with the markers of the records and
// recomputes the view. Every previous marker is reported as removed.
func (h *Handle) Apply(token Token, records []schema.LocationRecord, loc *time.Location) (Update, error) {
	markers := Markers(records, loc)
	view := Compute(records)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return Update{}, ErrDisposed
	}

	if token != h.latest {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"handle": h.id,
			"token":  token,
			"latest": h.latest,
		}).Info("discard stale selection")
		return Update{}, ErrStaleSelection
	}

	removed := make([]string, 0, len(h.markers))
	for _, m := range h.markers {
		removed = append(removed, m.ID)
	}

	h.markers = markers
	h.view = view

	return Update{
		Token:   token,
		Removed: removed,
		Markers: markers,
		View:    view,
	}, nil
}

// Markers returns a copy of the markers currently on the map
func (h *Handle) Markers() []Marker {
	h.mu.Lock()
	defer h.mu.Unlock()

	markers := make([]Marker, len(h.markers))
	copy(markers, h.markers)
	return markers
}

func (h *Handle) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// Dispose unmounts the map. It drops every marker and rejects any later
// selection.
func (h *Handle) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.disposed = true
	h.markers = nil
	h.view = DefaultView()
}

// touch records a use of the handle at t
func (h *Handle) touch(t time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t.After(h.lastUsed) {
		h.lastUsed = t
	}
}

func (h *Handle) lastUse() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastUsed
}

func (h *Handle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}
