package model

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Storage string `json:"storage"`
	Cleanup string `json:"cleanup"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status          string `json:"status"`
	VideosStored    int    `json:"videos_stored"`
	CleanupSchedule string `json:"cleanup_schedule"`
	Retention       string `json:"retention"`
}

// CleanupResponse is the body of GET /cleanup.
type CleanupResponse struct {
	Message         string `json:"message"`
	VideosRemaining int    `json:"videos_remaining"`
}
