package models

import "time"

// MembershipStatus is the viewer's relationship to a group.
type MembershipStatus string

const (
	MembershipMember  MembershipStatus = "member"
	MembershipPending MembershipStatus = "pending"
	MembershipInvited MembershipStatus = "invited"
	MembershipOwner   MembershipStatus = "owner"
)

// ApplicationStatus is the lifecycle state of a group application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
)

// Group is an interest or chapter group. MemberCount changes only in lockstep
// with membership transitions into or out of member, and never drops below 0.
type Group struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	CoverImage       string           `json:"coverImage,omitempty"`
	MemberCount      int              `json:"memberCount"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	Tags             []string         `json:"tags"`
}

// GroupApplication is a membership request awaiting simulated backend
// confirmation. At most one pending application exists per group; a new
// submission supersedes any prior pending one.
type GroupApplication struct {
	ID          string            `json:"id"`
	GroupID     string            `json:"groupId"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
}
