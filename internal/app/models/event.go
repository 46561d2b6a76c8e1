package models

// EventType is how an event is held.
type EventType string

const (
	EventVirtual  EventType = "virtual"
	EventInPerson EventType = "in-person"
	EventHybrid   EventType = "hybrid"
)

// TicketStatus describes the purchasable state of an event ticket.
type TicketStatus string

const (
	TicketAvailable TicketStatus = "available"
	TicketPurchased TicketStatus = "purchased"
	TicketSoldOut   TicketStatus = "sold_out"
)

// Event is a community event. Attendees never exceeds Capacity, and
// registering twice is idempotent.
type Event struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Date         string       `json:"date" example:"2026-10-03"`
	Time         string       `json:"time" example:"18:30"`
	Location     string       `json:"location"`
	Type         EventType    `json:"type"`
	Tags         []string     `json:"tags"`
	Registered   bool         `json:"registered"`
	Capacity     int          `json:"capacity"`
	Attendees    int          `json:"attendees"`
	OrganizerID  string       `json:"organizerId"`
	Currency     string       `json:"currency,omitempty"`
	TicketPrice  float64      `json:"ticketPrice,omitempty"`
	TicketStatus TicketStatus `json:"ticketStatus,omitempty"`
	Integrations []string     `json:"integrations,omitempty"`
}
