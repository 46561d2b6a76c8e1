package models

import "time"

// BadgeTier is the rarity level of an earned badge.
type BadgeTier string

const (
	TierBronze   BadgeTier = "bronze"
	TierSilver   BadgeTier = "silver"
	TierGold     BadgeTier = "gold"
	TierPlatinum BadgeTier = "platinum"
)

// Badge is an achievement earned by the viewer.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
	Tier        BadgeTier `json:"tier"`
}

// LeaderboardEntry ranks a member inside a segment or challenge.
type LeaderboardEntry struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Score    int      `json:"score"`
	Segment  string   `json:"segment"`
	BadgeIDs []string `json:"badgeIds"`
}

// Challenge is a monthly community challenge with its own leaderboard.
type Challenge struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Theme        string             `json:"theme"`
	Month        string             `json:"month"`
	Participants int                `json:"participants"`
	Submissions  int                `json:"submissions"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	Prize        string             `json:"prize"`
}

// Perk is a partner discount claimable by the viewer. Claiming is idempotent.
type Perk struct {
	ID           string `json:"id"`
	Partner      string `json:"partner"`
	Description  string `json:"description"`
	DiscountCode string `json:"discountCode"`
	Category     string `json:"category"`
	Claimed      bool   `json:"claimed"`
}

// VolunteerOpportunity is a call for alumni volunteers.
type VolunteerOpportunity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Impact       string `json:"impact"`
	Registered   bool   `json:"registered"`
	Hours        int    `json:"hours"`
	Needed       int    `json:"needed"`
	Participants int    `json:"participants"`
	Category     string `json:"category"`
}
