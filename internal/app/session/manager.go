/*
This file defines the Manager struct, which serves as the central store for all
live sessions. It is responsible for creating, resolving, destroying, and
periodically sweeping expired Session instances.
*/
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/randx"
)

// sweepInterval controls how often the background loop removes expired sessions.
const sweepInterval = 10 * time.Minute

// Manager struct is responsible for coordinating all live sessions.
type Manager struct {
	// sessions stores a map of all Session instances, keyed by session ID.
	sessions map[string]*Session

	// mu protects concurrent access to the sessions map.
	mu sync.RWMutex

	// now returns the current time. Swapped out in tests to drive expiry.
	now func() time.Time

	// done signals the sweep loop to stop during shutdown.
	done chan struct{}

	// wg is used to wait for the runSweepLoop goroutine to finish during shutdown.
	wg sync.WaitGroup

	// structured logger with Manager context.
	logger zerolog.Logger
}

// NewManager constructs a new Manager instance and starts its sweep loop.
func NewManager() *Manager {
	managerLogger := logx.Logger().With().Str("component", "SessionManager").Logger()

	m := &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
		done:     make(chan struct{}),
		logger:   managerLogger,
	}

	m.wg.Add(1)

	go m.runSweepLoop()

	return m
}

// Create issues a new session for the given account and adds it to the store.
// Each login gets a fresh session ID; existing sessions for the same account
// are left untouched.
func (m *Manager) Create(userID int64, username string) *Session {
	now := m.now()

	s := &Session{
		ID:        randx.SessionID(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info().Str("session_id", s.ID).Int64("user_id", userID).Msg("Session created.")
	return s
}

// Resolve retrieves a live session by its ID.
// It returns nil when the ID is unknown or the session has expired; expired
// entries are left for the sweep loop to remove.
func (m *Manager) Resolve(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil
	}

	if !m.now().Before(s.ExpiresAt) {
		return nil
	}

	return s
}

// Destroy removes the session with the given ID from the store.
// Destroying an unknown or already-destroyed session is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Info().Str("session_id", id).Msg("Session destroyed.")
	}
}

// Count returns the number of sessions currently held, including expired
// entries the sweep loop has not removed yet.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// runSweepLoop periodically removes expired sessions until Shutdown is called.
func (m *Manager) runSweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	m.logger.Info().Msg("Sweep loop started.")

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.done:
			m.logger.Info().Msg("Sweep loop stopped.")
			return
		}
	}
}

// sweep removes every session whose deadline has passed.
func (m *Manager) sweep() {
	now := m.now()

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.logger.Info().Int("removed", removed).Int("remaining", remaining).Msg("Expired sessions swept.")
	}
}

// Shutdown gracefully stops the Manager.
// It stops the sweep loop, waits for it to exit, and drops all sessions.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down session manager...")

	close(m.done)
	m.wg.Wait()

	m.mu.Lock()
	m.sessions = nil
	m.mu.Unlock()

	m.logger.Info().Msg("Session manager shutdown complete.")
}
