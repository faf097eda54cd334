package routes

import (
	"karyasetu-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes. Both audiences are public;
// already-authenticated visitors get redirected to their dashboard.
func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	citizen := r.Group("/auth/citizen")
	{
		citizen.GET("", auth.CitizenAuthPage)
		citizen.POST("/login", auth.CitizenLogin)
		citizen.POST("/signup", auth.CitizenSignup)
	}

	government := r.Group("/auth/government")
	{
		government.GET("", auth.GovernmentAuthPage)
		government.POST("/login", auth.GovernmentLogin)
		government.POST("/signup", auth.GovernmentSignup)
	}

	r.POST("/auth/logout", auth.Logout)
	r.GET("/auth/me", auth.Me)
}
