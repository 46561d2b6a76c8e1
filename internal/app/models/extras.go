package models

import "time"

// AnalyticsMetric is a dashboard figure supplied by the bootstrap snapshot.
// Not persisted; re-fetched on every fresh load.
type AnalyticsMetric struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Value float64   `json:"value"`
	Delta float64   `json:"delta,omitempty"`
	Unit  string    `json:"unit,omitempty"`
	Trend []float64 `json:"trend,omitempty"`
}

// AdminTaskStatus is the review state of a moderation task.
type AdminTaskStatus string

const (
	TaskOpen     AdminTaskStatus = "open"
	TaskInReview AdminTaskStatus = "in_review"
	TaskResolved AdminTaskStatus = "resolved"
)

// AdminTask is a moderation or operations item on the admin board.
type AdminTask struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      AdminTaskStatus `json:"status"`
	AssigneeID  string          `json:"assigneeId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IntegrationStatus describes whether a third-party integration is live.
type IntegrationStatus string

const (
	IntegrationConnected  IntegrationStatus = "connected"
	IntegrationAvailable  IntegrationStatus = "available"
	IntegrationComingSoon IntegrationStatus = "coming_soon"
)

// IntegrationStub is a placeholder entry on the integrations page.
type IntegrationStub struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      IntegrationStatus `json:"status"`
}

// PremiumInsight is a gated insight card shown to premium members.
type PremiumInsight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Metric      string `json:"metric,omitempty"`
}

// PodcastEpisode is an episode or blog entry in the media section.
type PodcastEpisode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Guest       string `json:"guest"`
	ReleaseDate string `json:"releaseDate"`
	Type        string `json:"type" example:"podcast"`
}
