package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session_not_found")
	ErrSessionExpired  = errors.New("session_expired")
)

// SessionService keeps the live order sessions of the storefront in memory.
// Commands against one session are serialized, so each session keeps a
// single writer even when requests arrive concurrently.
type SessionService interface {
	// Create starts a new session on the catalog defaults
	Create(ctx context.Context) (string, order.View, error)
	// View returns the current snapshot of a session
	View(ctx context.Context, id string) (order.View, error)
	// Apply runs fn against the session and returns the snapshot taken right after it
	Apply(ctx context.Context, id string, fn func(*order.Session) error) (order.View, error)
	// Expire drops sessions idle since before now minus the TTL and returns how many were dropped
	Expire(now time.Time) int
	// Count returns the number of live sessions
	Count() int
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *order.Session
	lastSeen time.Time
	removed  bool
}

// sessionService is the in-memory implementation of SessionService
type sessionService struct {
	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	catalog   catalog.Catalog
	unitPrice decimal.Decimal
	ttl       time.Duration
	now       func() time.Time
}

// NewSessionService creates a session registry for the given catalog.
// A ttl of zero or less keeps sessions until the process exits.
func NewSessionService(cat catalog.Catalog, unitPrice decimal.Decimal, ttl time.Duration) SessionService {
	return newSessionService(cat, unitPrice, ttl, time.Now)
}

func newSessionService(cat catalog.Catalog, unitPrice decimal.Decimal, ttl time.Duration, now func() time.Time) *sessionService {
	return &sessionService{
		sessions:  make(map[string]*sessionEntry),
		catalog:   cat,
		unitPrice: unitPrice,
		ttl:       ttl,
		now:       now,
	}
}

func (s *sessionService) Create(ctx context.Context) (string, order.View, error) {
	sess, err := order.NewSession(s.catalog, s.unitPrice)
	if err != nil {
		return "", order.View{}, err
	}
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{session: sess, lastSeen: s.now()}
	total := len(s.sessions)
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"session_id": id,
		"live":       total,
	}).Debug("Session created")
	return id, sess.Snapshot(), nil
}

func (s *sessionService) View(ctx context.Context, id string) (order.View, error) {
	return s.Apply(ctx, id, nil)
}

func (s *sessionService) Apply(ctx context.Context, id string, fn func(*order.Session) error) (order.View, error) {
	if err := ctx.Err(); err != nil {
		return order.View{}, err
	}

	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return order.View{}, ErrSessionNotFound
	}

	view, expired, err := s.run(entry, fn)
	if expired {
		s.remove(id, entry)
		return order.View{}, ErrSessionExpired
	}
	if err != nil {
		return order.View{}, err
	}
	return view, nil
}

// run executes fn under the entry lock. The lock is released even if fn panics.
func (s *sessionService) run(entry *sessionEntry, fn func(*order.Session) error) (order.View, bool, error) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := s.now()
	if entry.removed || s.idle(entry, now) {
		entry.removed = true
		return order.View{}, true, nil
	}
	entry.lastSeen = now

	if fn != nil {
		if err := fn(entry.session); err != nil {
			return order.View{}, false, err
		}
	}
	return entry.session.Snapshot(), false, nil
}

func (s *sessionService) Expire(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		if s.idle(entry, now) {
			entry.removed = true
			delete(s.sessions, id)
			dropped++
		}
		entry.mu.Unlock()
	}
	if dropped > 0 {
		log.WithFields(logrus.Fields{
			"dropped": dropped,
			"live":    len(s.sessions),
		}).Info("Expired idle sessions")
	}
	return dropped
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// idle must be called with entry.mu held
func (s *sessionService) idle(entry *sessionEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.lastSeen) > s.ttl
}

func (s *sessionService) remove(id string, entry *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] == entry {
		delete(s.sessions, id)
		log.WithField("session_id", id).Debug("Session expired")
	}
}
