package store

import (
	"sync"
	"time"

	"karyasetu-be/models"

	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const reportedMessage = "Issue reported by citizen"

// IssueDraft is what a caller supplies to AddIssue. Identifier, timestamps,
// vote state and timeline are all generated by the store.
type IssueDraft struct {
	Title       string
	Description string
	Category    models.IssueCategory
	Status      models.IssueStatus
	Priority    models.IssuePriority
	Location    models.Location
	Images      []string
	ReportedBy  string
	AssignedTo  string
	Rating      int
}

// IssuePatch is a partial update; nil fields are left untouched. Enum
// validation is the caller's responsibility; the store merges blindly.
type IssuePatch struct {
	Title           *string
	Description     *string
	Category        *models.IssueCategory
	Status          *models.IssueStatus
	Priority        *models.IssuePriority
	Location        *models.Location
	Images          *[]string
	AssignedTo      *string
	Rating          *int
	UpdatePending   *bool
	LastFieldUpdate *time.Time
}

// TimelineDraft is what a caller supplies to AddTimelineEvent.
type TimelineDraft struct {
	Status    models.IssueStatus
	Message   string
	UpdatedBy string
	IsPublic  bool
}

// IssueStore exclusively owns the canonical in-memory issue collection and
// every nested timeline. All reads return snapshots; all mutation goes
// through the documented operations.
type IssueStore struct {
	mu      sync.RWMutex
	issues  []*models.Issue // most-recent-first
	latency time.Duration
}

// NewIssueStore builds a store from a seed source. A nil source starts empty.
func NewIssueStore(src SeedSource, latency time.Duration) (*IssueStore, error) {
	s := &IssueStore{latency: latency}
	if src == nil {
		return s, nil
	}
	seeded, err := src.Issues()
	if err != nil {
		return nil, err
	}
	s.issues = seeded
	return s, nil
}

// AddIssue generates identity, timestamps, empty vote state and the seeded
// "reported" timeline entry, then prepends the issue.
func (s *IssueStore) AddIssue(draft IssueDraft) models.Issue {
	time.Sleep(s.latency)

	now := time.Now()
	issue := &models.Issue{
		ID:          primitive.NewObjectID().Hex(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Status:      draft.Status,
		Priority:    draft.Priority,
		Location:    draft.Location,
		Images:      append([]string(nil), draft.Images...),
		ReportedBy:  draft.ReportedBy,
		AssignedTo:  draft.AssignedTo,
		Upvotes:     0,
		UpvotedBy:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Rating:      draft.Rating,
		Timeline: []models.TimelineEvent{
			{
				ID:        primitive.NewObjectID().Hex(),
				Status:    models.Reported,
				Message:   reportedMessage,
				UpdatedBy: draft.ReportedBy,
				UpdatedAt: now,
				IsPublic:  true,
			},
		},
	}
	if issue.Status == "" {
		issue.Status = models.Reported
	}

	s.mu.Lock()
	s.issues = append([]*models.Issue{issue}, s.issues...)
	s.mu.Unlock()

	return issue.Clone()
}

// UpdateIssue merges the patch into the matching issue and refreshes its
// updated timestamp. An absent id is a no-op returning ok=false.
func (s *IssueStore) UpdateIssue(id string, patch IssuePatch) (models.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue := s.find(id)
	if issue == nil {
		return models.Issue{}, false
	}

	if patch.Title != nil {
		issue.Title = *patch.Title
	}
	if patch.Description != nil {
		issue.Description = *patch.Description
	}
	if patch.Category != nil {
		issue.Category = *patch.Category
	}
	if patch.Status != nil {
		issue.Status = *patch.Status
	}
	if patch.Priority != nil {
		issue.Priority = *patch.Priority
	}
	if patch.Location != nil {
		issue.Location = *patch.Location
	}
	if patch.Images != nil {
		issue.Images = append([]string(nil), (*patch.Images)...)
	}
	if patch.AssignedTo != nil {
		issue.AssignedTo = *patch.AssignedTo
	}
	if patch.Rating != nil {
		issue.Rating = *patch.Rating
	}
	if patch.UpdatePending != nil {
		issue.UpdatePending = *patch.UpdatePending
	}
	if patch.LastFieldUpdate != nil {
		t := *patch.LastFieldUpdate
		issue.LastFieldUpdate = &t
	}
	issue.UpdatedAt = time.Now()

	return issue.Clone(), true
}

// UpvoteIssue toggles userID's vote. The upvote count and the voter set stay
// synchronized at all times.
func (s *IssueStore) UpvoteIssue(id, userID string) (models.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue := s.find(id)
	if issue == nil {
		return models.Issue{}, false
	}

	voted := false
	for i, voter := range issue.UpvotedBy {
		if voter == userID {
			issue.UpvotedBy = append(issue.UpvotedBy[:i], issue.UpvotedBy[i+1:]...)
			voted = true
			break
		}
	}
	if !voted {
		issue.UpvotedBy = append(issue.UpvotedBy, userID)
	}
	issue.Upvotes = len(issue.UpvotedBy)

	return issue.Clone(), true
}

// AddTimelineEvent appends an event with generated identity and timestamp,
// and overwrites the issue's status with the event's status. Posting a
// timeline event is the sole status-change mechanism for the view layer.
func (s *IssueStore) AddTimelineEvent(issueID string, draft TimelineDraft) (models.TimelineEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue := s.find(issueID)
	if issue == nil {
		return models.TimelineEvent{}, false
	}

	event := models.TimelineEvent{
		ID:        primitive.NewObjectID().Hex(),
		Status:    draft.Status,
		Message:   draft.Message,
		UpdatedBy: draft.UpdatedBy,
		UpdatedAt: time.Now(),
		IsPublic:  draft.IsPublic,
	}
	issue.Timeline = append(issue.Timeline, event)
	issue.Status = draft.Status
	issue.UpdatedAt = event.UpdatedAt

	return event, true
}

// Get returns a snapshot of one issue.
func (s *IssueStore) Get(id string) (models.Issue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	issue := s.find(id)
	if issue == nil {
		return models.Issue{}, false
	}
	return issue.Clone(), true
}

// Issues returns a snapshot of the whole collection, most recent first.
func (s *IssueStore) Issues() []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(*models.Issue) bool { return true })
}

// IssuesByRegion returns all issues when region is empty, else the subset
// matching location.region exactly, in collection order.
func (s *IssueStore) IssuesByRegion(region string) []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if region == "" {
		return s.snapshot(func(*models.Issue) bool { return true })
	}
	return s.snapshot(func(i *models.Issue) bool { return i.Location.Region == region })
}

// IssuesByCategory mirrors IssuesByRegion for the category field.
func (s *IssueStore) IssuesByCategory(category string) []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == "" {
		return s.snapshot(func(*models.Issue) bool { return true })
	}
	return s.snapshot(func(i *models.Issue) bool { return string(i.Category) == category })
}

// IssuesByReporter returns the issues a user reported.
func (s *IssueStore) IssuesByReporter(userID string) []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(i *models.Issue) bool { return i.ReportedBy == userID })
}

// Analytics recomputes the derived view from current state on each call.
func (s *IssueStore) Analytics() models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := models.Analytics{
		TotalIssues:       len(s.issues),
		CategoryBreakdown: make(map[string]int),
		RegionBreakdown:   make(map[string]int),
	}

	ratings := make([]float64, 0, len(s.issues))
	for _, issue := range s.issues {
		if issue.Status == models.Resolved {
			a.ResolvedIssues++
		}
		a.CategoryBreakdown[string(issue.Category)]++
		a.RegionBreakdown[issue.Location.Region]++
		ratings = append(ratings, float64(issue.Rating))
	}
	a.PendingIssues = a.TotalIssues - a.ResolvedIssues

	if len(ratings) > 0 {
		if mean, err := stats.Mean(ratings); err == nil {
			a.AverageRating = mean
		}
	}
	return a
}

// Len reports the collection size.
func (s *IssueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issues)
}

func (s *IssueStore) find(id string) *models.Issue {
	for _, issue := range s.issues {
		if issue.ID == id {
			return issue
		}
	}
	return nil
}

func (s *IssueStore) snapshot(keep func(*models.Issue) bool) []models.Issue {
	out := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		if keep(issue) {
			out = append(out, issue.Clone())
		}
	}
	return out
}
