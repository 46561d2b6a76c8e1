package dto

import "github.com/koprumezun/mezunhub/internal/app/models"

// CreatePostRequest creates a feed post authored by the viewer.
type CreatePostRequest struct {
	Content string                `json:"content" binding:"required"`
	Tags    []string              `json:"tags"`
	Media   []models.ContentMedia `json:"media"`
}

// ReactRequest adds a reaction to a post.
type ReactRequest struct {
	Reaction models.ReactionType `json:"reaction" binding:"required,oneof=like celebrate insightful support"`
}

// CommentRequest adds a comment to a post or a reply to a forum thread.
type CommentRequest struct {
	AuthorID string `json:"authorId"`
	Content  string `json:"content" binding:"required"`
}

// GroupApplicationRequest submits a membership application.
type GroupApplicationRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// MentorRequestRequest asks for a mentorship match.
type MentorRequestRequest struct {
	MentorID string   `json:"mentorId" binding:"required"`
	Goals    []string `json:"goals"`
}

// FlashSessionRequest books a short mentoring slot.
type FlashSessionRequest struct {
	MentorID string `json:"mentorId" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
}

// AnalyzeResumeRequest runs the simulated resume review.
type AnalyzeResumeRequest struct {
	Highlights  []string `json:"highlights"`
	Suggestions []string `json:"suggestions"`
}

// CreateEventRequest creates a community event organized by the viewer.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Date        string           `json:"date" binding:"required" example:"2026-10-03"`
	Time        string           `json:"time" example:"18:30"`
	Location    string           `json:"location"`
	Type        models.EventType `json:"type" binding:"omitempty,oneof=virtual in-person hybrid"`
	Tags        []string         `json:"tags"`
	Capacity    int              `json:"capacity" binding:"omitempty,gt=0"`
	Currency    string           `json:"currency"`
	TicketPrice float64          `json:"ticketPrice" binding:"omitempty,gte=0"`
}

// DonationRequest donates to a fundraising campaign. The amount range is
// validated in the controller so a non-positive value maps to its own
// error code rather than a generic validation failure.
type DonationRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreateCampaignRequest starts a fundraising campaign.
type CreateCampaignRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Goal        float64 `json:"goal" binding:"required,gt=0"`
}

// EarnBadgeRequest records an earned badge.
type EarnBadgeRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Tier        models.BadgeTier `json:"tier" binding:"omitempty,oneof=bronze silver gold platinum"`
}

// ChallengeProofRequest submits proof for a community challenge.
type ChallengeProofRequest struct {
	ScoreBoost int `json:"scoreBoost" binding:"required,gt=0"`
}

// SendMessageRequest appends a direct message to a thread.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// UpdateProfileRequest patches the viewer's profile. Absent fields stay as
// they are.
type UpdateProfileRequest struct {
	Name         *string              `json:"name"`
	Title        *string              `json:"title"`
	Organization *string              `json:"organization"`
	Avatar       *string              `json:"avatar"`
	Bio          *string              `json:"bio"`
	Location     *string              `json:"location"`
	Industry     *string              `json:"industry"`
	Headline     *string              `json:"headline"`
	Skills       *[]string            `json:"skills"`
	Interests    *[]string            `json:"interests"`
	MentorStatus *models.MentorStatus `json:"mentorStatus" binding:"omitempty"`
}

// UpdateSettingsRequest patches the viewer's preferences.
type UpdateSettingsRequest struct {
	Language           *string `json:"language" binding:"omitempty,oneof=en tr"`
	ThemeMode          *string `json:"themeMode" binding:"omitempty,oneof=light dark system"`
	ThemePresetID      *string `json:"themePresetId"`
	OnboardingComplete *bool   `json:"onboardingComplete"`
}

// ClientLogRequest forwards a client-side log line to the server log.
type ClientLogRequest struct {
	Level   string                 `json:"level" binding:"omitempty,oneof=debug info warn error"`
	Message string                 `json:"message" binding:"required"`
	Fields  map[string]interface{} `json:"fields"`
}
