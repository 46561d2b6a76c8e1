package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps payload data in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// BootstrapResponse is the bootstrap endpoint payload: the snapshot plus
// non-fatal metadata such as a degraded-source warning.
type BootstrapResponse struct {
	Data interface{}   `json:"data"`
	Meta BootstrapMeta `json:"meta"`
}

// BootstrapMeta carries non-fatal bootstrap diagnostics.
type BootstrapMeta struct {
	Warning string `json:"warning,omitempty"`
}

// DemoStatusResponse reports engine status for the demo dashboard. Warning
// carries any non-fatal startup problem, the same text the bootstrap
// envelope reports.
type DemoStatusResponse struct {
	ViewerID       string `json:"viewerId"`
	Hydrated       bool   `json:"hydrated"`
	StorageBackend string `json:"storageBackend"`
	Clients        int    `json:"clients"`
	Warning        string `json:"warning,omitempty"`
}
