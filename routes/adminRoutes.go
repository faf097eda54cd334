package routes

import (
	"karyasetu-be/controllers"
	"karyasetu-be/middlewares"
	"karyasetu-be/models"
	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the government dashboard routes, open to admins and
// field officers.
func AdminRoutes(r *gin.Engine, admin *controllers.AdminController, identity *store.IdentityService) {
	group := r.Group("/admin", middlewares.RequireRoles(identity, models.GovernmentRoles...))
	{
		group.GET("", admin.Dashboard)
		group.GET("/issues", admin.ListIssues)
		group.PATCH("/issues/:id", admin.UpdateIssue)
		group.POST("/issues/:id/timeline", admin.AddTimelineEvent)
		group.GET("/analytics", admin.Analytics)
	}
}
