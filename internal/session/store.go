package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/users"

	"gorm.io/gorm"
)

var (
	ErrUnknownUser  = errors.New("unknown user")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpired      = errors.New("session expired")
	ErrRevoked      = errors.New("session revoked")
)

// Session is what consumers receive from the store. While Loading is true the
// store has not finished initializing and User must not be evaluated.
type Session struct {
	User    *access.User
	Record  *users.User
	Loading bool
}

// Store owns session lifecycle: opening sessions by email, revoking them, and
// hydrating the user snapshot for each request.
type Store struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time

	ready atomic.Bool

	mu      sync.Mutex
	revoked map[string]time.Time
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(db *gorm.DB, secret string, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		db:      db,
		secret:  []byte(secret),
		ttl:     ttl,
		log:     slog.Default(),
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MarkReady ends the loading phase.
func (s *Store) MarkReady() {
	s.ready.Store(true)
}

func (s *Store) Ready() bool {
	return s.ready.Load()
}

func (s *Store) Now() time.Time {
	return s.now()
}

// Login opens a session for the user registered under email. There is no
// credential check: the identity source is trusted.
func (s *Store) Login(ctx context.Context, email string) (string, *Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil, ErrUnknownUser
	}

	var u users.User
	err := s.db.WithContext(ctx).Preload("Subscription").Where("LOWER(email) = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrUnknownUser
	}
	if err != nil {
		return "", nil, fmt.Errorf("load user %s: %w", email, err)
	}

	token, claims, err := s.sign(u.ID, u.Email, string(access.ParseRole(u.Role)), s.now())
	if err != nil {
		return "", nil, err
	}
	s.log.Info("session opened", slog.Uint64("user_id", uint64(u.ID)), slog.String("session_id", claims.ID))
	return token, s.session(&u), nil
}

// Authenticate verifies a bearer token and rejects revoked sessions.
func (s *Store) Authenticate(token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, ErrRevoked
	}
	return claims, nil
}

// Logout revokes the session until its token would have expired anyway.
func (s *Store) Logout(claims *Claims) {
	if claims == nil || claims.ID == "" {
		return
	}
	expiry := s.now().Add(s.ttl)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[claims.ID] = expiry
	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	s.log.Info("session closed", slog.String("session_id", claims.ID))
}

// Current re-reads the user and subscription from storage. Nothing is kept
// between calls, so a subscription edited elsewhere is seen on the next
// request.
func (s *Store) Current(ctx context.Context, userID uint) (*Session, error) {
	if !s.Ready() {
		return &Session{Loading: true}, nil
	}

	var u users.User
	err := s.db.WithContext(ctx).Preload("Subscription").First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return s.session(&u), nil
}

func (s *Store) session(u *users.User) *Session {
	if u.HasRoleConflict() {
		s.log.Warn("user flagged as trainer but stored with client role; role column wins",
			slog.Uint64("user_id", uint64(u.ID)))
	}
	return &Session{User: u.Snapshot(), Record: u}
}
