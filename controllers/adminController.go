package controllers

import (
	"net/http"
	"time"

	"karyasetu-be/middlewares"
	"karyasetu-be/models"
	"karyasetu-be/store"

	"github.com/gin-gonic/gin"
)

// AdminController serves the government dashboard for admins and field
// officers.
type AdminController struct {
	issues *store.IssueStore
}

func NewAdminController(issues *store.IssueStore) *AdminController {
	return &AdminController{issues: issues}
}

// Dashboard returns the issues visible to the caller. Field officers are
// scoped to their own region and department through the shared policy; admins
// see every region.
func (ac *AdminController) Dashboard(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	scope := store.ScopeFor(user)
	issues := scope.Apply(scopedIssues(ac.issues, scope))

	resolved := 0
	updatePending := 0
	for _, issue := range issues {
		if issue.Status == models.Resolved {
			resolved++
		}
		if issue.UpdatePending {
			updatePending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   userPayload(user),
		"issues": issues,
		"stats": gin.H{
			"totalIssues":   len(issues),
			"pendingIssues": len(issues) - resolved,
			"resolved":      resolved,
			"updatePending": updatePending,
		},
	})
}

// ListIssues applies explicit region/category/status query filters on top of
// the caller's scope.
func (ac *AdminController) ListIssues(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	scope := store.ScopeFor(user)
	if scope.Region == "" {
		scope.Region = c.Query("region")
	}
	if scope.Category == "" {
		scope.Category = c.Query("category")
	}

	issues := scope.Apply(ac.issues.Issues())

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Issue, 0, len(issues))
		for _, issue := range issues {
			if string(issue.Status) == status {
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

// UpdateIssue merges partial fields into an issue and stamps
// lastFieldUpdate.
func (ac *AdminController) UpdateIssue(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title         *string  `json:"title,omitempty" binding:"omitempty,max=200"`
		Description   *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
		Category      *string  `json:"category,omitempty" binding:"omitempty,oneof=sanitation roads electrical"`
		Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=reported acknowledged assigned in_progress resolved"`
		Priority      *string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
		AssignedTo    *string  `json:"assignedTo,omitempty"`
		Rating        *int     `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
		UpdatePending *bool    `json:"updatePending,omitempty"`
		Images        []string `json:"images,omitempty" binding:"omitempty,max=3"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.IssuePatch{
		Title:         input.Title,
		Description:   input.Description,
		AssignedTo:    input.AssignedTo,
		Rating:        input.Rating,
		UpdatePending: input.UpdatePending,
	}
	if input.Category != nil {
		cat := models.IssueCategory(*input.Category)
		patch.Category = &cat
	}
	if input.Status != nil {
		st := models.IssueStatus(*input.Status)
		patch.Status = &st
	}
	if input.Priority != nil {
		pr := models.IssuePriority(*input.Priority)
		patch.Priority = &pr
	}
	if input.Images != nil {
		patch.Images = &input.Images
	}

	// An empty patch changes nothing, so it neither stamps lastFieldUpdate
	// nor refreshes the updated timestamp.
	if patch == (store.IssuePatch{}) {
		issue, ok := ac.issues.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		c.JSON(http.StatusOK, issue)
		return
	}

	now := time.Now()
	patch.LastFieldUpdate = &now

	issue, ok := ac.issues.UpdateIssue(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// AddTimelineEvent appends a status update to an issue's timeline. This is
// how status changes reach citizens: the event's status overwrites the
// issue's status.
func (ac *AdminController) AddTimelineEvent(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Status   string `json:"status" binding:"required,oneof=reported acknowledged assigned in_progress resolved"`
		Message  string `json:"message" binding:"required,max=500"`
		IsPublic *bool  `json:"isPublic,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	event, ok := ac.issues.AddTimelineEvent(c.Param("id"), store.TimelineDraft{
		Status:    models.IssueStatus(input.Status),
		Message:   input.Message,
		UpdatedBy: user.ID,
		IsPublic:  isPublic,
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Analytics returns the derived analytics view, recomputed from current
// state.
func (ac *AdminController) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, ac.issues.Analytics())
}

// scopedIssues narrows the initial fetch when the scope pins a region, so the
// dashboard reuses the store's region query instead of rescanning everything.
func scopedIssues(issues *store.IssueStore, scope store.Scope) []models.Issue {
	if scope.Region != "" {
		return issues.IssuesByRegion(scope.Region)
	}
	return issues.Issues()
}
