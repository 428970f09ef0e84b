package icebreakers

import (
	"strings"
	"sync"
)

// DefaultSession is the implicit session shared by anonymous callers.
const DefaultSession = "default"

// SessionTracker owns per-session used-question state. Sessions live for the
// process lifetime; there is no TTL, only an explicit Clear. Calls for
// different sessions never contend beyond the map lookup.
type SessionTracker struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	order []int
	used  map[int]struct{}
}

// NewSessionTracker returns an empty tracker.
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{sessions: make(map[string]*session)}
}

func normalizeSessionID(id string) string {
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		return trimmed
	}
	return DefaultSession
}

func (t *SessionTracker) acquire(id string) *session {
	t.mu.Lock()
	defer t.mu.Unlock()
	sess, ok := t.sessions[id]
	if !ok {
		sess = &session{used: make(map[int]struct{})}
		t.sessions[id] = sess
	}
	return sess
}

// Used returns a copy of the ids surfaced so far, in surfacing order.
func (t *SessionTracker) Used(sessionID string) []int {
	sess := t.acquire(normalizeSessionID(sessionID))
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]int, len(sess.order))
	copy(out, sess.order)
	return out
}

// Record appends ids to the session's used set.
func (t *SessionTracker) Record(sessionID string, ids []int) {
	sess := t.acquire(normalizeSessionID(sessionID))
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.record(ids)
}

// Clear forgets everything surfaced for the session.
func (t *SessionTracker) Clear(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, normalizeSessionID(sessionID))
}

// WithSession runs fn inside the session's critical section. fn receives the
// current used set (which it must not mutate) and returns the ids it chose;
// those are recorded before the lock is released. This is what keeps two
// concurrent selections for one session from picking the same question.
func (t *SessionTracker) WithSession(sessionID string, fn func(used map[int]struct{}) []int) {
	sess := t.acquire(normalizeSessionID(sessionID))
	sess.mu.Lock()
	defer sess.mu.Unlock()
	chosen := fn(sess.used)
	sess.record(chosen)
}

func (s *session) record(ids []int) {
	for _, id := range ids {
		if _, dup := s.used[id]; dup {
			continue
		}
		s.used[id] = struct{}{}
		s.order = append(s.order, id)
	}
}
