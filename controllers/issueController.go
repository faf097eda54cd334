package controllers

import (
	"net/http"

	"karyasetu-be/middlewares"
	"karyasetu-be/models"
	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
)

// IssueController serves the citizen-facing issue operations.
type IssueController struct {
	issues *store.IssueStore
}

func NewIssueController(issues *store.IssueStore) *IssueController {
	return &IssueController{issues: issues}
}

// Dashboard returns the citizen's own issues alongside the community-wide
// analytics snapshot.
func (ic *IssueController) Dashboard(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      userPayload(user),
		"myIssues":  ic.issues.IssuesByReporter(user.ID),
		"analytics": ic.issues.Analytics(),
	})
}

// ListIssues returns the collection, optionally narrowed by region and
// category query parameters. Empty parameters leave the collection untouched.
func (ic *IssueController) ListIssues(c *gin.Context) {
	region := c.Query("region")
	category := c.Query("category")

	issues := ic.issues.IssuesByRegion(region)
	if category != "" {
		filtered := make([]models.Issue, 0, len(issues))
		for _, issue := range issues {
			if string(issue.Category) == category {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// GetIssue returns a single issue with its full timeline.
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, ok := ic.issues.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	c.JSON(http.StatusOK, issue)
}

// CreateIssue reports a new issue on behalf of the authenticated citizen.
// Coordinates are optional: geolocation is best-effort and the client falls
// back to manually entered values. Image references are caller-supplied URLs
// (the upload service is stubbed), capped at three.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Category    string   `json:"category" binding:"required,oneof=sanitation roads electrical"`
		Priority    string   `json:"priority" binding:"required,oneof=low medium high urgent"`
		Lat         float64  `json:"lat"`
		Lng         float64  `json:"lng"`
		Address     string   `json:"address" binding:"required,max=200"`
		Region      string   `json:"region" binding:"required"`
		Images      []string `json:"images" binding:"omitempty,max=3"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue := ic.issues.AddIssue(store.IssueDraft{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Status:      models.Reported,
		Priority:    models.IssuePriority(input.Priority),
		Location: models.Location{
			Lat:     input.Lat,
			Lng:     input.Lng,
			Address: input.Address,
			Region:  input.Region,
		},
		Images:     input.Images,
		ReportedBy: user.ID,
	})

	c.JSON(http.StatusCreated, issue)
}

// UpvoteIssue toggles the caller's vote on an issue.
func (ic *IssueController) UpvoteIssue(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	issue, ok := ic.issues.UpvoteIssue(c.Param("id"), user.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	userHasVoted := false
	for _, voter := range issue.UpvotedBy {
		if voter == user.ID {
			userHasVoted = true
			break
		}
	}

	message := "Vote removed successfully"
	if userHasVoted {
		message = "Vote cast successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"voted":        userHasVoted,
		"votes":        issue.Upvotes,
		"userHasVoted": userHasVoted,
	})
}
