package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/guessnumber/game/engine"
	"github.com/wricardo/mcp-training/guessnumber/game/service"
)

var (
	ErrRoundInProgress = errors.New("a round is already in progress")
	ErrNoActiveRound   = errors.New("no active round")
	ErrRoundNotFound   = errors.New("round not found")
)

// Manager handles the round lifecycle
type Manager struct {
	current  *service.Session
	finished []*service.Session
	now      func() time.Time
	mu       sync.RWMutex
}

// NewManager creates a new round manager
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// Start opens a round for player backed by eng
func (m *Manager) Start(player string, config engine.GameConfig, eng engine.Engine) (*service.Session, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return nil, ErrRoundInProgress
	}

	session := &service.Session{
		ID:        uuid.NewString(),
		Player:    player,
		Engine:    eng,
		Config:    config,
		StartedAt: m.now(),
	}
	m.current = session
	return session, nil
}

// Current returns the active round
func (m *Manager) Current() (*service.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, ErrNoActiveRound
	}
	return m.current, nil
}

// Finish closes the active round and moves it to the history
func (m *Manager) Finish(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.ID != id {
		return ErrRoundNotFound
	}

	if m.current.FinishedAt.IsZero() {
		m.current.FinishedAt = m.now()
	}
	m.finished = append(m.finished, m.current)
	m.current = nil
	return nil
}

// History returns finished rounds, oldest first
func (m *Manager) History() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, len(m.finished))
	copy(result, m.finished)
	return result
}

// Count returns the number of rounds started, including the active one
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := len(m.finished)
	if m.current != nil {
		count++
	}
	return count
}
