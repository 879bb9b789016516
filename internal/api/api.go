package api

import (
	"time"

	"placesync/internal/ingest"
)

// API is the application-facing facade. All callers (HTTP, console shell) go
// through this; it owns no logic beyond delegation.
type API struct {
	ing       *ingest.Service
	startedAt time.Time
}

func New(ing *ingest.Service) *API {
	return &API{ing: ing, startedAt: time.Now().UTC()}
}

// Health responds with the health status of the app.
func (api *API) Health() interface{} {
	return map[string]interface{}{
		"app":       "placesync",
		"startedAt": api.startedAt.Format(time.RFC3339),
		"status":    "ok",
	}
}
