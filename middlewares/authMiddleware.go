package middlewares

import (
	"net/http"

	"karyasetu-be/models"
	"karyasetu-be/store"
	authUtils "karyasetu-be/utils"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie minted at login/signup.
const CookieName = "auth_token"

// UserKey is the gin context key the resolved user is stored under.
const UserKey = "user"

// RequireRoles gates a route group on role membership. Unauthenticated or
// unauthorized requests are redirected to the public landing route rather
// than rejected with an error status, mirroring the view-layer contract.
func RequireRoles(identity *store.IdentityService, allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := ResolveUser(c, identity)
		if user == nil {
			redirectToLanding(c)
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Set(UserKey, user)
				c.Next()
				return
			}
		}
		redirectToLanding(c)
	}
}

// ResolveUser returns the session user, or nil when the cookie is absent,
// invalid, or does not match the identity service's current user.
func ResolveUser(c *gin.Context, identity *store.IdentityService) *models.User {
	tokenString, err := c.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return nil
	}

	userID, _, err := authUtils.ParseToken(tokenString)
	if err != nil {
		return nil
	}

	current := identity.Current()
	if current == nil || current.ID != userID {
		return nil
	}
	return current
}

// CurrentUser pulls the user set by RequireRoles out of the gin context.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(UserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func redirectToLanding(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}
