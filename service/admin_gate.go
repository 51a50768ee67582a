package services

import (
	"log"
	"sync"
	"time"
)

type tabSession struct {
	admin    bool
	lastSeen time.Time
}

// AdminGate unlocks comment deletion for a tab after the shared secret is typed.
// It is a cosmetic gate: no hashing, no lockout, no rate limit, in memory only.
type AdminGate struct {
	secret string

	mu       sync.Mutex
	sessions map[string]*tabSession
	now      func() time.Time
}

func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{
		secret:   secret,
		sessions: make(map[string]*tabSession),
		now:      time.Now,
	}
}

// Login marks the tab as admin when secret matches; a mismatch leaves the tab unchanged.
func (g *AdminGate) Login(tabID, secret string) bool {
	if tabID == "" || secret != g.secret {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[tabID] = &tabSession{admin: true, lastSeen: g.now()}
	log.Printf("[AdminGate] Tab %s unlocked", tabID)
	return true
}

// IsAdmin reports whether the tab is unlocked and refreshes its idle clock.
func (g *AdminGate) IsAdmin(tabID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	session, ok := g.sessions[tabID]
	if !ok {
		return false
	}
	session.lastSeen = g.now()
	return session.admin
}

func (g *AdminGate) Logout(tabID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, tabID)
}

// Sweep drops sessions idle for longer than ttl and returns how many were dropped.
func (g *AdminGate) Sweep(ttl time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.now().Add(-ttl)
	dropped := 0
	for id, session := range g.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(g.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Sessions returns the number of tracked tab sessions.
func (g *AdminGate) Sessions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}
