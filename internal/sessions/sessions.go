package sessions

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var Log = logrus.New()

// Session owns one game. Every access to the game goes through Do.
type Session struct {
	ID        string
	StartedAt time.Time

	mu      sync.Mutex
	game    *mines.Game
	touched time.Time
}

func (s *Session) Do(fn func(g *mines.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	return fn(s.game)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(r *rand.Rand) *Store {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Store{
		sessions: make(map[string]*Session),
		rnd:      r,
	}
}

// each game draws from its own source seeded off the store's
func (s *Store) newRand() *rand.Rand {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return rand.New(rand.NewPCG(s.rnd.Uint64(), s.rnd.Uint64()))
}

func (s *Store) Create(params mines.GameParams) (*Session, error) {
	game, err := mines.NewGame(params, s.newRand())
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		game:      game,
		touched:   now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	Log.WithFields(logrus.Fields{
		"session": session.ID,
		"params":  params.Seed(),
	}).Debug("session created")
	return session, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions untouched for longer than ttl and returns how many
// were removed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if now.Sub(session.idleSince()) > ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := s.Sweep(now, ttl); n > 0 {
				Log.WithFields(logrus.Fields{
					"removed": n,
					"active":  s.Len(),
				}).Info("swept idle sessions")
			}
		}
	}
}
