package models

import "time"

// JobPosting is an open role shared with the network.
type JobPosting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	PostedAt    string   `json:"postedAt"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Saved       bool     `json:"saved,omitempty"`
}

// JobApplicationStage tracks where an application sits in the pipeline.
type JobApplicationStage string

const (
	StageApplied   JobApplicationStage = "applied"
	StageReview    JobApplicationStage = "review"
	StageInterview JobApplicationStage = "interview"
	StageOffer     JobApplicationStage = "offer"
)

// JobApplication records the viewer's application to a job. At most one
// application exists per job id; apply is idempotent.
type JobApplication struct {
	ID        string              `json:"id"`
	JobID     string              `json:"jobId"`
	Status    JobApplicationStage `json:"status"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ResumeAnalysis is the result of the simulated resume review. The generator
// bounds the score to [70,95) but the field is logically 0-100.
type ResumeAnalysis struct {
	ID               string   `json:"id"`
	Score            int      `json:"score"`
	Highlights       []string `json:"highlights"`
	Suggestions      []string `json:"suggestions"`
	RecommendedAlumni []string `json:"recommendedAlumni"`
}
