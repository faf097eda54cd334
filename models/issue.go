package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	Sanitation IssueCategory = "sanitation"
	Roads      IssueCategory = "roads"
	Electrical IssueCategory = "electrical"
)

var Categories = []IssueCategory{Sanitation, Roads, Electrical}

// IssueStatus enum. The values form an ordered workflow, but transitions are
// not restricted: an issue may move from any status to any other.
type IssueStatus string

const (
	Reported     IssueStatus = "reported"
	Acknowledged IssueStatus = "acknowledged"
	Assigned     IssueStatus = "assigned"
	InProgress   IssueStatus = "in_progress"
	Resolved     IssueStatus = "resolved"
)

var Statuses = []IssueStatus{Reported, Acknowledged, Assigned, InProgress, Resolved}

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "low"
	Medium IssuePriority = "medium"
	High   IssuePriority = "high"
	Urgent IssuePriority = "urgent"
)

var Priorities = []IssuePriority{Low, Medium, High, Urgent}

// Location pins an issue to a point and a named region.
type Location struct {
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	Address string  `json:"address" yaml:"address"`
	Region  string  `json:"region" yaml:"region"`
}

// TimelineEvent is one entry in an issue's append-only history. Events are
// never mutated or removed; append order is chronological order.
type TimelineEvent struct {
	ID        string      `json:"id" yaml:"id"`
	Status    IssueStatus `json:"status" yaml:"status"`
	Message   string      `json:"message" yaml:"message"`
	UpdatedBy string      `json:"updatedBy" yaml:"updatedBy"`
	UpdatedAt time.Time   `json:"updatedAt" yaml:"updatedAt"`
	IsPublic  bool        `json:"isPublic" yaml:"isPublic"`
}

// Issue represents a civic issue reported by a citizen.
// Invariant: Upvotes always equals len(UpvotedBy).
type Issue struct {
	ID              string          `json:"id" yaml:"id"`
	Title           string          `json:"title" yaml:"title"`
	Description     string          `json:"description" yaml:"description"`
	Category        IssueCategory   `json:"category" yaml:"category"`
	Status          IssueStatus     `json:"status" yaml:"status"`
	Priority        IssuePriority   `json:"priority" yaml:"priority"`
	Location        Location        `json:"location" yaml:"location"`
	Images          []string        `json:"images" yaml:"images"`
	ReportedBy      string          `json:"reportedBy" yaml:"reportedBy"`
	AssignedTo      string          `json:"assignedTo,omitempty" yaml:"assignedTo,omitempty"`
	Upvotes         int             `json:"upvotes" yaml:"upvotes"`
	UpvotedBy       []string        `json:"upvotedBy" yaml:"upvotedBy"`
	CreatedAt       time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" yaml:"updatedAt"`
	Timeline        []TimelineEvent `json:"timeline" yaml:"timeline"`
	LastFieldUpdate *time.Time      `json:"lastFieldUpdate,omitempty" yaml:"lastFieldUpdate,omitempty"`
	UpdatePending   bool            `json:"updatePending" yaml:"updatePending"`
	Rating          int             `json:"rating" yaml:"rating"`
}

// Clone returns a deep copy so callers can hold a snapshot without aliasing
// the store's canonical record.
func (i *Issue) Clone() Issue {
	out := *i
	out.Images = append([]string(nil), i.Images...)
	out.UpvotedBy = append([]string(nil), i.UpvotedBy...)
	out.Timeline = append([]TimelineEvent(nil), i.Timeline...)
	if i.LastFieldUpdate != nil {
		t := *i.LastFieldUpdate
		out.LastFieldUpdate = &t
	}
	return out
}
