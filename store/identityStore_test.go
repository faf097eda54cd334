package store

import (
	"context"
	"testing"

	"karyasetu-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T, kv KeyValueStore) *IdentityService {
	t.Helper()
	s, err := NewIdentityService(context.Background(), kv, 0)
	require.NoError(t, err)
	return s
}

func TestLoginSynthesizesRoleDefaults(t *testing.T) {
	s := newIdentityService(t, NewMemoryKV())

	citizen, err := s.Login(context.Background(), "c@example.com", "whatever", models.RoleCitizen)
	require.NoError(t, err)
	assert.Equal(t, "John Citizen", citizen.Name)
	assert.Equal(t, "+91-9876543210", citizen.Phone)
	assert.Equal(t, "Ranchi", citizen.Region)
	assert.Empty(t, citizen.Department)

	admin, err := s.Login(context.Background(), "a@example.com", "whatever", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin Singh", admin.Name)
	assert.Empty(t, admin.Region)

	officer, err := s.Login(context.Background(), "f@example.com", "whatever", models.RoleFieldOfficer)
	require.NoError(t, err)
	assert.Equal(t, "Field Officer Kumar", officer.Name)
	assert.Equal(t, "Ranchi", officer.Region)
	assert.Equal(t, "sanitation", officer.Department)

	// Each login mints a fresh identifier.
	assert.NotEqual(t, citizen.ID, admin.ID)
}

func TestLoginPersistsAndRestoreRoundTrips(t *testing.T) {
	kv := NewMemoryKV()
	s := newIdentityService(t, kv)

	user, err := s.Login(context.Background(), "c@example.com", "pw", models.RoleCitizen)
	require.NoError(t, err)

	// Simulated process restart against the same durable storage.
	restarted := newIdentityService(t, kv)
	restored := restarted.Current()
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Role, restored.Role)
	assert.Equal(t, user.Name, restored.Name)
}

func TestSignupSeedsFromDraft(t *testing.T) {
	s := newIdentityService(t, NewMemoryKV())

	user, err := s.Signup(context.Background(), SignupDraft{
		Name:       "Asha Devi",
		Email:      "asha@example.com",
		Phone:      "+91-9123456780",
		Password:   "secret123",
		Region:     "Bokaro",
		Department: "roads",
	}, models.RoleFieldOfficer)
	require.NoError(t, err)

	assert.Equal(t, "Asha Devi", user.Name)
	assert.Equal(t, "Bokaro", user.Region)
	assert.Equal(t, "roads", user.Department)
	assert.Equal(t, models.RoleFieldOfficer, user.Role)
	// Password is stored hashed, never in the clear.
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.ComparePassword("secret123"))
}

func TestSignupDefaultsMissingFieldsToEmpty(t *testing.T) {
	s := newIdentityService(t, NewMemoryKV())

	user, err := s.Signup(context.Background(), SignupDraft{Email: "x@example.com"}, models.RoleCitizen)
	require.NoError(t, err)
	assert.Empty(t, user.Name)
	assert.Empty(t, user.Phone)
	assert.Empty(t, user.Region)
}

func TestLogoutClearsCurrentAndPersistedUser(t *testing.T) {
	kv := NewMemoryKV()
	s := newIdentityService(t, kv)

	_, err := s.Login(context.Background(), "c@example.com", "pw", models.RoleCitizen)
	require.NoError(t, err)
	require.NotNil(t, s.Current())

	require.NoError(t, s.Logout(context.Background()))
	assert.Nil(t, s.Current())

	_, err = kv.Get(context.Background(), CurrentUserKey)
	assert.ErrorIs(t, err, ErrNotFound)

	// A restart after logout restores nothing.
	restarted := newIdentityService(t, kv)
	assert.Nil(t, restarted.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := newIdentityService(t, NewMemoryKV())
	_, err := s.Login(context.Background(), "c@example.com", "pw", models.RoleCitizen)
	require.NoError(t, err)

	first := s.Current()
	first.Name = "tampered"
	assert.NotEqual(t, "tampered", s.Current().Name)
}
