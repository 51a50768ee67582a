package services

import (
	"log"
	"sync"
	"time"
)

// TabStateSweeper is in-memory per-tab state that can forget idle tabs.
type TabStateSweeper interface {
	Sweep(ttl time.Duration) int
}

// SessionSweeperService periodically forgets idle tab state: admin sessions
// and picked dishes of the day.
type SessionSweeperService struct {
	sweepers []TabStateSweeper
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionSweeperService constructs a sweeper dropping tab state idle for longer than ttl.
func NewSessionSweeperService(ttl time.Duration, sweepers ...TabStateSweeper) *SessionSweeperService {
	return &SessionSweeperService{
		sweepers: sweepers,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (ss *SessionSweeperService) StartPeriodicJob(interval time.Duration) {
	go ss.startPeriodicJob(interval)
}

func (ss *SessionSweeperService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ss.SweepOnce()
		case <-ss.stop:
			log.Println("[SessionSweeperService] Stopped.")
			return
		}
	}
}

// SweepOnce runs a single pass and returns the number of dropped entries.
func (ss *SessionSweeperService) SweepOnce() int {
	dropped := 0
	for _, sweeper := range ss.sweepers {
		dropped += sweeper.Sweep(ss.ttl)
	}
	if dropped > 0 {
		log.Printf("[SessionSweeperService] Dropped %d idle tab entries", dropped)
	}
	return dropped
}

// Stop ends the periodic job. Safe to call more than once.
func (ss *SessionSweeperService) Stop() {
	ss.stopOnce.Do(func() { close(ss.stop) })
}
