package routes

import (
	"karyasetu-be/controllers"
	"karyasetu-be/middlewares"
	"karyasetu-be/models"
	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
)

// CitizenRoutes sets up the citizen dashboard and issue routes. extraCreate
// middlewares (the redis rate limiter in production) run on issue creation
// only.
func CitizenRoutes(r *gin.Engine, issue *controllers.IssueController, identity *store.IdentityService, extraCreate ...gin.HandlerFunc) {
	citizen := r.Group("/citizen", middlewares.RequireRoles(identity, models.RoleCitizen))
	{
		citizen.GET("", issue.Dashboard)
		citizen.GET("/issues", issue.ListIssues)
		citizen.GET("/issues/:id", issue.GetIssue)
		citizen.POST("/issues", append(extraCreate, issue.CreateIssue)...)
		citizen.POST("/issues/:id/upvote", issue.UpvoteIssue)
	}
}
