package api

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"taskmaster-api/domain"
	"taskmaster-api/storage"
)

// Demo credentials accepted by the mock login.
const (
	demoEmail    = "demo@example.com"
	demoPassword = "password"
	demoName     = "Demo User"
	demoUserID   = "user_123"
)

const sessionTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials rejects a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession means no user entry exists; the profile is logged out.
	ErrNoSession = errors.New("no active session")
)

// SessionManager owns the session entry in durable storage and the HS256
// tokens handed to clients. Registration is a mock: registered users live
// for the process lifetime only, and login verifies the password of the
// demo account alone.
type SessionManager struct {
	backend storage.Backend
	secret  []byte
	parser  *jwt.Parser

	mu         sync.Mutex
	registered map[string]domain.User
}

// NewSessionManager creates a session manager signing tokens with secret.
func NewSessionManager(backend storage.Backend, secret []byte) *SessionManager {
	if backend == nil {
		panic("api.NewSessionManager: backend is nil")
	}
	if len(secret) == 0 {
		panic("api.NewSessionManager: empty signing secret")
	}
	return &SessionManager{
		backend:    backend,
		secret:     secret,
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
		registered: map[string]domain.User{},
	}
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Register creates a user record for the given profile without signing the
// user in.
func (m *SessionManager) Register(name, email string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !strings.Contains(email, "@") {
		return domain.User{}, errors.New("name and a valid email are required")
	}
	u := domain.User{ID: "user_" + uuid.NewString(), Name: name, Email: email}
	m.mu.Lock()
	m.registered[strings.ToLower(email)] = u
	m.mu.Unlock()
	return u, nil
}

// Login validates credentials, persists the session entry and returns the
// user with a signed token.
func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	var user domain.User
	if strings.EqualFold(strings.TrimSpace(email), demoEmail) {
		if password != demoPassword {
			return domain.User{}, "", ErrInvalidCredentials
		}
		user = domain.User{ID: demoUserID, Name: demoName, Email: demoEmail}
	} else {
		m.mu.Lock()
		u, ok := m.registered[strings.ToLower(strings.TrimSpace(email))]
		m.mu.Unlock()
		if !ok {
			return domain.User{}, "", ErrInvalidCredentials
		}
		user = u
	}

	if err := m.backend.SaveUser(ctx, user); err != nil {
		return domain.User{}, "", err
	}
	token, err := m.issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (m *SessionManager) issue(u domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Logout deletes the session entry. Absence afterwards means logged out.
func (m *SessionManager) Logout(ctx context.Context) error {
	return m.backend.DeleteUser(ctx)
}

// Current returns the persisted session user, or ErrNoSession.
func (m *SessionManager) Current(ctx context.Context) (domain.User, error) {
	u, err := m.backend.LoadUser(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.User{}, ErrNoSession
	}
	return u, err
}

// UserFromAuthHeader validates a bearer token and returns its user.
func (m *SessionManager) UserFromAuthHeader(header string) (domain.User, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return domain.User{}, errors.New("missing bearer token")
	}
	claims := &sessionClaims{}
	_, err := m.parser.ParseWithClaims(strings.TrimSpace(header[len(prefix):]), claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}
