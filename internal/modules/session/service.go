package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tmusonda/smartcart-backend/internal/storage"
)

// sessionKey is the fixed storage key the current identity lives under.
const sessionKey = "current-user-session"

// Service manages the mock identity persisted whole under one storage key.
type Service interface {
	// Login signs in with no credential check: the role is admin when the
	// email contains "admin", the display name is the email's local part.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// Register creates a new customer identity and signs it in.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Current returns the signed-in user, or nil when there is no session.
	// A malformed stored value counts as no session, never an error.
	Current(ctx context.Context) (*User, error)

	// Logout discards the current session.
	Logout(ctx context.Context) error
}

type service struct {
	store storage.Store
}

// NewService creates a session service over the given store.
func NewService(store storage.Store) Service {
	return &service{store: store}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, error) {
	at := strings.Index(req.Email, "@")
	if at <= 0 {
		return nil, fmt.Errorf("a valid email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	role := RoleCustomer
	if strings.Contains(req.Email, "admin") {
		role = RoleAdmin
	}
	u := &User{
		ID:    "1",
		Email: req.Email,
		Name:  req.Email[:at],
		Role:  role,
	}
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if at := strings.Index(req.Email, "@"); at <= 0 {
		return nil, fmt.Errorf("a valid email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	u := &User{
		ID:    uuid.NewString(),
		Email: req.Email,
		Name:  req.Name,
		Role:  RoleCustomer,
	}
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Current(ctx context.Context) (*User, error) {
	b, err := s.store.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		// Corrupted or foreign-format content; treat as signed out.
		return nil, nil
	}
	return &u, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *service) save(ctx context.Context, u *User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey, b); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
