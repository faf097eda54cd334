package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"karyasetu-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CurrentUserKey is the fixed key the serialized current user lives under.
const CurrentUserKey = "karyasetu:current_user"

// SignupDraft carries caller-supplied fields for Signup. Anything left empty
// stays empty on the synthesized user.
type SignupDraft struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	Region     string
	Department string
}

// IdentityService owns the current-user value. Login and signup are mock
// operations: no credential is ever checked, a user is synthesized and
// persisted under CurrentUserKey after a fixed artificial latency. That the
// flow cannot fail (and cannot be cancelled mid-latency) is a documented
// non-goal, not an oversight.
type IdentityService struct {
	mu      sync.RWMutex
	current *models.User
	kv      KeyValueStore
	latency time.Duration
}

// NewIdentityService constructs the service and synchronously restores a
// previously persisted user, so the router never serves during the
// restoration window.
func NewIdentityService(ctx context.Context, kv KeyValueStore, latency time.Duration) (*IdentityService, error) {
	s := &IdentityService{kv: kv, latency: latency}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *IdentityService) restore(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, CurrentUserKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to restore persisted user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return fmt.Errorf("failed to decode persisted user: %w", err)
	}
	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
	return nil
}

// Login synthesizes a user for the given role. The password is accepted but
// never validated.
func (s *IdentityService) Login(ctx context.Context, email, _ string, role models.Role) (*models.User, error) {
	time.Sleep(s.latency)

	user := &models.User{
		ID:        primitive.NewObjectID().Hex(),
		Name:      displayNameFor(role),
		Email:     email,
		Phone:     "+91-9876543210",
		Role:      role,
		CreatedAt: time.Now(),
	}
	if role != models.RoleAdmin {
		user.Region = "Ranchi"
	}
	if role == models.RoleFieldOfficer {
		user.Department = string(models.Sanitation)
	}

	if err := s.setCurrent(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup synthesizes a user seeded from the draft. The supplied password is
// bcrypt-hashed into the persisted record even though login never reads it.
func (s *IdentityService) Signup(ctx context.Context, draft SignupDraft, role models.Role) (*models.User, error) {
	time.Sleep(s.latency)

	user := &models.User{
		ID:         primitive.NewObjectID().Hex(),
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Role:       role,
		Region:     draft.Region,
		Department: draft.Department,
		Password:   draft.Password,
		CreatedAt:  time.Now(),
	}
	if err := user.HashPassword(); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.setCurrent(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the current user and removes the persisted record.
func (s *IdentityService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.kv.Del(ctx, CurrentUserKey)
}

// Current returns the authenticated user, or nil.
func (s *IdentityService) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *IdentityService) setCurrent(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.kv.Set(ctx, CurrentUserKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return nil
}

func displayNameFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Admin Singh"
	case models.RoleFieldOfficer:
		return "Field Officer Kumar"
	default:
		return "John Citizen"
	}
}
