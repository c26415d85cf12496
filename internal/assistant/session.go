package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the per-conversation state the dispatcher works on.
type Session struct {
	ID string

	mu       sync.Mutex
	searched bool
	cancel   context.CancelFunc
	seq      uint64
	lastUsed time.Time
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString(), lastUsed: time.Now()}
}

// FirstSearch reports whether nothing has been submitted in this session yet.
func (s *Session) FirstSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.searched
}

// begin starts a round trip. Any round trip still in flight is canceled.
// It reports whether this is the session's first submission.
func (s *Session) begin(parent context.Context) (context.Context, func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.seq++
	seq := s.seq

	first := !s.searched
	s.searched = true
	s.lastUsed = time.Now()

	done := func() {
		cancel()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq == seq {
			s.cancel = nil
		}
	}
	return ctx, done, first
}

// Cancel aborts the in-flight round trip, if any.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Sessions is a registry of live sessions.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

// Get returns the session for id. An empty or unknown id gets a new session.
func (r *Sessions) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok && id != "" {
		return s
	}
	s := NewSession()
	r.sessions[s.ID] = s
	return s
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops sessions idle for longer than maxIdle and returns how many went.
func (r *Sessions) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			s.Cancel()
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
