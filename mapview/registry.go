package mapview

import (
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultIdleTimeout = 30 * time.Minute
	DefaultMaxHandles  = 10000
)

// Registry keeps the mounted map handles by id. A handle unused for longer
// than the idle timeout is disposed, and when the registry is full the
// least recently used handle makes room for a new one. A zero idle timeout
// or max disables the limit.
type Registry struct {
	handles     cmap.ConcurrentMap[string, *Handle]
	idleTimeout time.Duration
	maxHandles  int

	now func() time.Time
}

func NewRegistry(idleTimeout time.Duration, maxHandles int) *Registry {
	return &Registry{
		handles:     cmap.New[*Handle](),
		idleTimeout: idleTimeout,
		maxHandles:  maxHandles,
		now:         time.Now,
	}
}

// Create mounts a new handle under a random id. Idle handles are reaped
// first.
func (r *Registry) Create() *Handle {
	r.Reap()

	if r.maxHandles > 0 {
		for r.handles.Count() >= r.maxHandles {
			if !r.evictOldest() {
				break
			}
		}
	}

	h := NewHandle(uuid.New().String())
	h.touch(r.now())
	r.handles.Set(h.ID(), h)

	log.WithFields(log.Fields{"prefix": logPrefix, "handle": h.ID()}).Debug("map handle created")
	return h
}

// Get returns the handle and marks it as used
func (r *Registry) Get(id string) (*Handle, bool) {
	h, ok := r.handles.Get(id)
	if !ok {
		return nil, false
	}

	if r.expired(h, r.now()) {
		r.Dispose(id)
		return nil, false
	}

	h.touch(r.now())
	return h, true
}

// Dispose removes and disposes the handle. It returns false for an unknown
// id.
func (r *Registry) Dispose(id string) bool {
	h, ok := r.handles.Pop(id)
	if !ok {
		return false
	}

	h.Dispose()
	log.WithFields(log.Fields{"prefix": logPrefix, "handle": id}).Debug("map handle disposed")
	return true
}

// Reap disposes every handle idle for longer than the idle timeout and
// returns how many were disposed
func (r *Registry) Reap() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	now := r.now()
	reaped := 0
	for item := range r.handles.IterBuffered() {
		if r.expired(item.Val, now) && r.Dispose(item.Key) {
			reaped++
		}
	}

	if reaped > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "count": reaped}).Info("reaped idle map handles")
	}
	return reaped
}

func (r *Registry) expired(h *Handle, now time.Time) bool {
	return r.idleTimeout > 0 && now.Sub(h.lastUse()) > r.idleTimeout
}

func (r *Registry) evictOldest() bool {
	var (
		oldestID string
		oldest   time.Time
	)
	for item := range r.handles.IterBuffered() {
		used := item.Val.lastUse()
		if oldestID == "" || used.Before(oldest) {
			oldestID = item.Key
			oldest = used
		}
	}

	if oldestID == "" {
		return false
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "handle": oldestID}).Warn("registry full, evict least recently used map handle")
	r.Dispose(oldestID)
	return true
}

func (r *Registry) Len() int {
	return r.handles.Count()
}

// Close disposes every handle
func (r *Registry) Close() {
	for _, id := range r.handles.Keys() {
		r.Dispose(id)
	}
}
