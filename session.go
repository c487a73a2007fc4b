package enneabot

import (
	"context"
	"sync"
)

// Step identifies where in the questionnaire a session currently is.
type Step string

const (
	StepStart   Step = "start"
	StepAskName Step = "ask_name"
	StepQ11     Step = "q1_1"
	StepQ12     Step = "q1_2"
	StepQ21     Step = "q2_1"
	StepQ3      Step = "q3"
	StepWing    Step = "wing"
	StepSave    Step = "save"
)

// Answers holds the normalized questionnaire answers collected so far.
// Single-choice answers may be empty when the user typed something outside
// 1-3; they are stored as-is and surface later as a lookup miss.
type Answers struct {
	Q11    string `json:"q1_1"`
	Q12    string `json:"q1_2"`
	Q21    string `json:"q2_1"`
	Triple string `json:"q3"`
}

// Session is the per-user quiz state. One session exists per user id; fields
// are populated step by step and dropped again on reset after a terminal
// step or the restart keyword.
type Session struct {
	UserID    string  `json:"user_id"`
	Step      Step    `json:"step"`
	Name      string  `json:"name"`
	Answers   Answers `json:"answers"`
	BasicType string  `json:"basic_type"`
	Wing      string  `json:"wing"`
}

// NewSession returns a fresh session at the menu step.
func NewSession(userID string) *Session {
	return &Session{UserID: userID, Step: StepStart}
}

// Reset returns the session to the menu step, dropping name, answers and
// classification.
func (s *Session) Reset() {
	*s = Session{UserID: s.UserID, Step: StepStart}
}

// SessionStore is the pluggable backend for per-user quiz sessions.
//
// Implementations must be safe for concurrent use across users. Callers are
// assumed not to issue concurrent messages for the same user id; per-session
// mutual exclusion is not provided.
type SessionStore interface {
	// Get returns the stored session for userID, or nil when none exists.
	Get(ctx context.Context, userID string) (*Session, error)

	// Put stores the session under its user id, replacing any previous one.
	Put(ctx context.Context, s *Session) error
}

// InMemorySessionStore keeps sessions in a process-local map. Sessions never
// expire; they live for the lifetime of the process, like the rest of the
// in-memory stores here. Data is lost on restart.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemorySessionStore creates an empty in-memory session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]Session)}
}

func (m *InMemorySessionStore) Get(ctx context.Context, userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	// Copy so that mutations only become visible through Put, matching the
	// contract of the remote backends.
	cp := s
	return &cp, nil
}

func (m *InMemorySessionStore) Put(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.UserID] = *s
	return nil
}
