package models

import "time"

// Role identifies what kind of member a profile belongs to.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// LanguageCode is a supported interface language.
type LanguageCode string

const (
	LanguageEnglish LanguageCode = "en"
	LanguageTurkish LanguageCode = "tr"
)

// MentorStatus describes a mentor's current availability.
type MentorStatus string

const (
	MentorAvailable   MentorStatus = "available"
	MentorLimited     MentorStatus = "limited"
	MentorUnavailable MentorStatus = "unavailable"
)

// UserProfile is a member of the alumni network. Exactly one profile is the
// "viewer", pointed to by the store's viewerId field. The reference is weak:
// the profile may be absent from a filtered view, and renderers must treat an
// unresolved author as an unknown member rather than an error.
type UserProfile struct {
	ID                      string         `json:"id" example:"u-2041"`
	Name                    string         `json:"name" example:"Elif Aksoy"`
	Role                    Role           `json:"role" example:"alumni"`
	Title                   string         `json:"title" example:"Product Engineer"`
	Organization            string         `json:"organization,omitempty"`
	Avatar                  string         `json:"avatar,omitempty"`
	Bio                     string         `json:"bio"`
	ClassYear               string         `json:"classYear" example:"2018"`
	Location                string         `json:"location"`
	Industry                string         `json:"industry"`
	Skills                  []string       `json:"skills"`
	Interests               []string       `json:"interests"`
	Languages               []LanguageCode `json:"languages"`
	Badges                  []string       `json:"badges"`
	Headline                string         `json:"headline,omitempty"`
	MentorStatus            MentorStatus   `json:"mentorStatus,omitempty"`
	PreferredMentoringTopics []string      `json:"preferredMentoringTopics,omitempty"`
}

// DigitalCard is a scannable membership card issued to a profile.
type DigitalCard struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	QRCode    string    `json:"qrCode"`
	ExpiresAt time.Time `json:"expiresAt"`
}
