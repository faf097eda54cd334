package store

import "karyasetu-be/models"

// Scope restricts which issues a user may see on the admin views. Empty
// fields mean unrestricted.
type Scope struct {
	Region   string
	Category string
}

// ScopeFor is the single policy mapping a user to their issue scope. Field
// officers are pinned to their own region and department; admins see
// everything. Keeping this in one place stops the route layer and the
// dashboard filters from drifting apart.
func ScopeFor(user *models.User) Scope {
	if user == nil || user.Role != models.RoleFieldOfficer {
		return Scope{}
	}
	return Scope{Region: user.Region, Category: user.Department}
}

// Apply filters a snapshot down to the scope.
func (sc Scope) Apply(issues []models.Issue) []models.Issue {
	if sc.Region == "" && sc.Category == "" {
		return issues
	}
	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if sc.Region != "" && issue.Location.Region != sc.Region {
			continue
		}
		if sc.Category != "" && string(issue.Category) != sc.Category {
			continue
		}
		out = append(out, issue)
	}
	return out
}
