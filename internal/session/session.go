// Package session turns a verified identity from the auth provider into a
// per-request Session carrying the caller's role.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

var (
	ErrNoIdentity    = errors.New("identity has no uid")
	ErrSessionClosed = errors.New("session closed")
)

// Identity is what the auth provider vouches for.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

type Session struct {
	UID         string
	Email       string
	DisplayName string
	Role        entities.Role

	mu      sync.Mutex
	profile *entities.User
	closed  bool
}

func (s *Session) Principal() entities.Principal {
	return entities.Principal{ID: s.UID, Email: s.Email, DisplayName: s.DisplayName, Role: s.Role}
}

func (s *Session) IsAdmin() bool {
	return s.Role == entities.RoleAdmin
}

// Profile returns the user document loaded at sign-in. Sessions built
// without one report the identity fields.
func (s *Session) Profile() (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return entities.User{}, ErrSessionClosed
	}
	if s.profile != nil {
		return *s.profile, nil
	}
	return entities.User{ID: s.UID, Email: s.Email, DisplayName: s.DisplayName, Role: s.Role}, nil
}

// SetProfile replaces the cached profile after the user edited it.
func (s *Session) SetProfile(u entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.profile = &u
	return nil
}

type Manager struct {
	users interfaces.IUserRepository
	now   func() time.Time
}

func NewManager(users interfaces.IUserRepository) *Manager {
	return &Manager{users: users, now: time.Now}
}

// SignIn loads the caller's profile, creating it with the client role on
// first sign-in.
func (m *Manager) SignIn(ctx context.Context, id Identity) (*Session, error) {
	if strings.TrimSpace(id.UID) == "" {
		return nil, ErrNoIdentity
	}

	u, err := m.users.GetByID(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u.ID == "" {
		u, err = m.register(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return &Session{
		UID:         id.UID,
		Email:       firstNonEmpty(id.Email, u.Email),
		DisplayName: firstNonEmpty(u.DisplayName, id.DisplayName, emailName(id.Email), emailName(u.Email)),
		Role:        entities.ParseRole(string(u.Role)),
		profile:     &u,
	}, nil
}

func (m *Manager) register(ctx context.Context, id Identity) (entities.User, error) {
	now := m.now().UTC()
	u := entities.User{
		ID:          id.UID,
		Email:       id.Email,
		DisplayName: firstNonEmpty(id.DisplayName, emailName(id.Email)),
		Role:        entities.RoleClient,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := m.users.Create(ctx, u)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Another request registered the same uid first.
		return m.users.GetByID(ctx, id.UID)
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("create user: %w", err)
	}
	log.Printf("[session] registered user_id=%s", created.ID)
	return created, nil
}

// SignOut drops the cached profile; the session cannot be used afterwards.
func (m *Manager) SignOut(s *Session) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.closed = true
}

func emailName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
