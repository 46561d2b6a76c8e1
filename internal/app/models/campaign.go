package models

// FundraisingCampaign tracks a donation drive. Progress is derived:
// round(raised/goal*100) clamped to 100.
type FundraisingCampaign struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Goal             float64  `json:"goal"`
	Raised           float64  `json:"raised"`
	Donors           int      `json:"donors"`
	Progress         int      `json:"progress"`
	ImpactHighlights []string `json:"impactHighlights"`
}
