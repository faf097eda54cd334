package store

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"karyasetu-be/models"

	"github.com/goccy/go-yaml"
)

// SeedSource supplies the initial issue snapshot. The generated sample set is
// a demo/test fixture, not production behavior, so the store takes it as an
// external collaborator that tests can swap out.
type SeedSource interface {
	Issues() ([]*models.Issue, error)
}

type sampleSeed struct {
	count int
	rng   *rand.Rand
}

// NewSampleSeed generates count synthetic issues cycling through all
// categories and regions. The same seed value yields the same snapshot.
func NewSampleSeed(count int, seed int64) SeedSource {
	return &sampleSeed{count: count, rng: rand.New(rand.NewSource(seed))}
}

var seedRegions = []string{"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Deoghar"}

func imagesForCategory(category models.IssueCategory) []string {
	switch category {
	case models.Roads:
		return []string{"https://images.pexels.com/photos/2835436/pexels-photo-2835436.jpeg"}
	case models.Sanitation:
		return []string{"https://images.pexels.com/photos/2768961/pexels-photo-2768961.jpeg"}
	case models.Electrical:
		return []string{
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg",
			"https://images.pexels.com/photos/1591060/pexels-photo-1591060.jpeg",
		}
	default:
		return []string{"https://images.pexels.com/photos/247763/pexels-photo-247763.jpeg"}
	}
}

func (s *sampleSeed) Issues() ([]*models.Issue, error) {
	issues := make([]*models.Issue, 0, s.count)
	now := time.Now()

	for i := 0; i < s.count; i++ {
		category := models.Categories[i%len(models.Categories)]
		region := seedRegions[i%len(seedRegions)]
		categoryImages := imagesForCategory(category)
		reporter := fmt.Sprintf("citizen_%d", i+1)
		created := now.Add(-time.Duration(s.rng.Intn(30*24)) * time.Hour)

		// Voter set sized to match the upvote count so the count/set
		// invariant holds from the first read.
		upvotes := s.rng.Intn(15)
		voters := make([]string, 0, upvotes)
		for v := 0; v < upvotes; v++ {
			voters = append(voters, fmt.Sprintf("citizen_%d_%d", i+1, v+1))
		}

		issue := &models.Issue{
			ID:          fmt.Sprintf("issue_%d", i+1),
			Title:       fmt.Sprintf("Issue %d: %s problem", i+1, category),
			Description: fmt.Sprintf("Detailed description of the %s issue reported by citizen.", category),
			Category:    category,
			Status:      models.Statuses[s.rng.Intn(len(models.Statuses))],
			Priority:    models.Priorities[s.rng.Intn(len(models.Priorities))],
			Location: models.Location{
				Lat:     23.3441 + (s.rng.Float64()-0.5)*0.1,
				Lng:     85.3096 + (s.rng.Float64()-0.5)*0.1,
				Address: fmt.Sprintf("Area %d, %s", i+1, region),
				Region:  region,
			},
			Images:     []string{categoryImages[s.rng.Intn(len(categoryImages))]},
			ReportedBy: reporter,
			Upvotes:    upvotes,
			UpvotedBy:  voters,
			CreatedAt:  created,
			UpdatedAt:  now,
			Timeline: []models.TimelineEvent{
				{
					ID:        fmt.Sprintf("timeline_%d_1", i+1),
					Status:    models.Reported,
					Message:   reportedMessage,
					UpdatedBy: reporter,
					UpdatedAt: created,
					IsPublic:  true,
				},
			},
			UpdatePending: s.rng.Float64() > 0.7,
			Rating:        s.rng.Intn(5) + 1,
		}
		if s.rng.Float64() > 0.5 {
			issue.AssignedTo = fmt.Sprintf("officer_%d", i%3+1)
		}
		if s.rng.Float64() > 0.3 {
			t := now.Add(-time.Duration(s.rng.Intn(14*24)) * time.Hour)
			issue.LastFieldUpdate = &t
		}

		issues = append(issues, issue)
	}

	return issues, nil
}

type fileSeed struct {
	path string
}

// NewFileSeed loads the initial snapshot from a YAML fixture file.
func NewFileSeed(path string) SeedSource {
	return &fileSeed{path: path}
}

func (f *fileSeed) Issues() ([]*models.Issue, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var doc struct {
		Issues []*models.Issue `yaml:"issues"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", f.path, err)
	}
	for _, issue := range doc.Issues {
		if issue.Upvotes != len(issue.UpvotedBy) {
			return nil, fmt.Errorf("seed file %s: issue %s upvote count %d does not match voter set size %d",
				f.path, issue.ID, issue.Upvotes, len(issue.UpvotedBy))
		}
	}
	return doc.Issues, nil
}
