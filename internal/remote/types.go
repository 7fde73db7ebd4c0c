package remote

import "time"

// Health-check status values as reported by the API.
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Application is a monitored application as stored by the health service.
// Tags are referenced by name for display and editing; HealthChecks arrive
// most-recent-first, with at least the latest check inlined for card display.
type Application struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	IsProduction bool          `json:"is_production"`
	Tags         []Tag         `json:"tags"`
	HealthChecks []HealthCheck `json:"health_checks"`
}

// Tag labels applications for grouping and search.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HealthCheck is one immutable probe result for an application.
// ResponseTime is in seconds and may be absent when the probe never connected.
type HealthCheck struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	ResponseTime *float64  `json:"response_time"`
	CheckedAt    time.Time `json:"checked_at"`
}

// Up reports whether the check recorded the application as reachable.
func (h HealthCheck) Up() bool {
	return h.Status == StatusUp
}

// ApplicationInput is the request body for creating or updating an application.
// Tags carries tag names; the server resolves them to tag records.
type ApplicationInput struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	IsProduction bool     `json:"is_production"`
	Tags         []string `json:"tags"`
}

// TagInput is the request body for creating a tag.
type TagInput struct {
	Name string `json:"name"`
}

// TagNames returns the application's tag names in display order.
func (a Application) TagNames() []string {
	if len(a.Tags) == 0 {
		return nil
	}
	names := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		names[i] = t.Name
	}
	return names
}

// LatestCheck returns the newest health check, or false if the application
// has no recorded history yet.
func (a Application) LatestCheck() (HealthCheck, bool) {
	if len(a.HealthChecks) == 0 {
		return HealthCheck{}, false
	}
	return a.HealthChecks[0], true
}
