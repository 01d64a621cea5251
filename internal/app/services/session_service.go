package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// LoginFailedMessage is the only message shown for a failed login, whatever
// the cause.
const LoginFailedMessage = "Invalid username or password"

// Authenticator exchanges credentials with the backend
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}

// SessionService is the Session Store. It is owned by the application and
// injected where identity is needed.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(id string)
	Get(id string) (*models.Session, error)
	Count() int
}

// sessionServiceImpl keeps sessions in memory; nothing is persisted
type sessionServiceImpl struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	auth     Authenticator
	lifetime time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewSessionService creates an empty session store. Sessions older than
// lifetime are dropped; a zero lifetime keeps them until logout.
func NewSessionService(auth Authenticator, lifetime time.Duration, logger zerolog.Logger) SessionService {
	return &sessionServiceImpl{
		sessions: make(map[string]*models.Session),
		auth:     auth,
		lifetime: lifetime,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates against the backend. Every failure collapses to
// ErrInvalidCredentials so the caller can only show LoginFailedMessage.
func (s *sessionServiceImpl) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, LoginFailedMessage)
	}

	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("Login failed")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, LoginFailedMessage)
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		User:      resp.User,
		Token:     resp.Token,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info().Str("username", session.User.Username).Msg("User logged in successfully")
	return session, nil
}

// Logout forgets the session; the backend is not contacted
func (s *sessionServiceImpl) Logout(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.logger.Info().Str("username", session.User.Username).Msg("User logged out")
	}
}

// Get returns the authenticated session with the given id. An expired
// session is forgotten on the way out.
func (s *sessionServiceImpl) Get(id string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if s.expired(session) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		s.logger.Info().Str("username", session.User.Username).Msg("Session expired")
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionServiceImpl) expired(session *models.Session) bool {
	return s.lifetime > 0 && s.now().Sub(session.CreatedAt) >= s.lifetime
}

// pruneLocked drops every expired session, including those whose browser
// never came back. The caller holds the write lock.
func (s *sessionServiceImpl) pruneLocked() {
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
		}
	}
}

// Count returns the number of live sessions
func (s *sessionServiceImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
