package controllers

import (
	"net/http"

	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
)

// LandingController serves the public landing route.
type LandingController struct {
	issues *store.IssueStore
}

func NewLandingController(issues *store.IssueStore) *LandingController {
	return &LandingController{issues: issues}
}

// Landing exposes the service description and a public analytics snapshot.
func (lc *LandingController) Landing(c *gin.Context) {
	analytics := lc.issues.Analytics()
	c.JSON(http.StatusOK, gin.H{
		"name":    "KaryaSetu",
		"tagline": "Report, track and resolve civic issues across Jharkhand",
		"auth": gin.H{
			"citizen":    "/auth/citizen",
			"government": "/auth/government",
		},
		"stats": gin.H{
			"totalIssues":    analytics.TotalIssues,
			"resolvedIssues": analytics.ResolvedIssues,
			"pendingIssues":  analytics.PendingIssues,
		},
	})
}
