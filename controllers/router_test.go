package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"karyasetu-be/controllers"
	"karyasetu-be/routes"
	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	engine   *gin.Engine
	identity *store.IdentityService
	issues   *store.IssueStore
}

func newTestApp(t *testing.T, seed store.SeedSource) *testApp {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)

	identity, err := store.NewIdentityService(context.Background(), store.NewMemoryKV(), 0)
	require.NoError(t, err)
	issues, err := store.NewIssueStore(seed, 0)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", controllers.NewLandingController(issues).Landing)
	routes.AuthRoutes(r, controllers.NewAuthController(identity))
	routes.CitizenRoutes(r, controllers.NewIssueController(issues), identity)
	routes.AdminRoutes(r, controllers.NewAdminController(issues), identity)
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	return &testApp{engine: r, identity: identity, issues: issues}
}

func (a *testApp) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
