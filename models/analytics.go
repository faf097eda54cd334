package models

// Analytics is a derived view over the issue collection. It is recomputed on
// every read and never cached (PendingIssues is always Total - Resolved).
type Analytics struct {
	TotalIssues       int            `json:"totalIssues"`
	ResolvedIssues    int            `json:"resolvedIssues"`
	PendingIssues     int            `json:"pendingIssues"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`
	RegionBreakdown   map[string]int `json:"regionBreakdown"`
	AverageRating     float64        `json:"averageRating"`
}
