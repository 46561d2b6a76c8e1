package models

import "time"

// MentorRequestStatus is the lifecycle state of a mentor request.
// Transitions are pending -> accepted or pending -> scheduled only; a request
// is terminal once it leaves pending.
type MentorRequestStatus string

const (
	MentorRequestPending   MentorRequestStatus = "pending"
	MentorRequestAccepted  MentorRequestStatus = "accepted"
	MentorRequestScheduled MentorRequestStatus = "scheduled"
)

// MentorRequest is a viewer's ask to be matched with a mentor.
type MentorRequest struct {
	ID        string              `json:"id"`
	MentorID  string              `json:"mentorId"`
	Goals     []string            `json:"goals"`
	Status    MentorRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// MatchStatus is the lifecycle state of a mentorship match.
type MatchStatus string

const (
	MatchRequested  MatchStatus = "requested"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

// MentorshipMatch pairs a mentor and mentee. Created as a side effect when a
// mentor request resolves to accepted. Progress is 0-100.
type MentorshipMatch struct {
	ID       string      `json:"id"`
	MentorID string      `json:"mentorId"`
	MenteeID string      `json:"menteeId"`
	Goals    []string    `json:"goals"`
	Progress int         `json:"progress"`
	Status   MatchStatus `json:"status"`
	Notes    []string    `json:"notes,omitempty"`
}

// FlashSessionStatus describes a short mentoring slot's state.
type FlashSessionStatus string

const (
	FlashAvailable FlashSessionStatus = "available"
	FlashHeld      FlashSessionStatus = "held"
	FlashUpcoming  FlashSessionStatus = "upcoming"
)

// FlashSession is a short one-off mentoring slot.
type FlashSession struct {
	ID              string             `json:"id"`
	MentorID        string             `json:"mentorId"`
	MenteeID        string             `json:"menteeId,omitempty"`
	StartTime       time.Time          `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Topic           string             `json:"topic"`
	Status          FlashSessionStatus `json:"status"`
}
