package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitizenLoginEstablishesSession(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodPost, "/auth/citizen/login", map[string]any{
		"email":    "ravi@example.com",
		"password": "anything-goes",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "/citizen", body["redirect"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "citizen", user["role"])
	assert.Equal(t, "John Citizen", user["name"])
	assert.Equal(t, "ravi@example.com", user["email"])

	cookie := sessionCookie(t, w)

	me := app.do(t, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, user["id"], decodeBody(t, me)["id"])
}

func TestGovernmentLoginRejectsCitizenRole(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodPost, "/auth/government/login", map[string]any{
		"email":    "officer@example.com",
		"password": "pw",
		"role":     "citizen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodPost, "/auth/citizen/signup", map[string]any{
		"name":            "Ravi Kumar",
		"email":           "ravi@example.com",
		"password":        "secret123",
		"confirmPassword": "secret124",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, app.identity.Current())
}

func TestGovernmentSignupRequiresDepartmentForFieldOfficer(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodPost, "/auth/government/signup", map[string]any{
		"name":            "Asha Devi",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"role":            "field_officer",
		"region":          "Bokaro",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFieldOfficerSignupThenLogoutScenario(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodPost, "/auth/government/signup", map[string]any{
		"name":            "Asha Devi",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"role":            "field_officer",
		"region":          "Bokaro",
		"department":      "roads",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Bokaro", user["region"])
	assert.Equal(t, "roads", user["department"])
	assert.Equal(t, "/admin", body["redirect"])

	cookie := sessionCookie(t, w)
	dash := app.do(t, http.MethodGet, "/admin", nil, cookie)
	require.Equal(t, http.StatusOK, dash.Code)

	logout := app.do(t, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, logout.Code)

	// Unauthenticated access to the admin view lands back on the landing route.
	redirected := app.do(t, http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusFound, redirected.Code)
	assert.Equal(t, "/", redirected.Header().Get("Location"))
}

func TestAuthPageRedirectsAuthenticatedUsers(t *testing.T) {
	app := newTestApp(t, nil)

	login := app.do(t, http.MethodPost, "/auth/citizen/login", map[string]any{
		"email":    "ravi@example.com",
		"password": "pw",
	})
	cookie := sessionCookie(t, login)

	w := app.do(t, http.MethodGet, "/auth/citizen", nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/citizen", w.Header().Get("Location"))

	anon := app.do(t, http.MethodGet, "/auth/citizen", nil)
	assert.Equal(t, http.StatusOK, anon.Code)
}

func TestMeUnauthenticated(t *testing.T) {
	app := newTestApp(t, nil)
	w := app.do(t, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
