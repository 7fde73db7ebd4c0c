// Package filter derives the displayed application views from the canonical
// set: free-text narrowing plus the production/non-production split.
//
// Everything here is a pure function over its inputs, cheap enough to run
// on every keystroke.
package filter

import (
	"strings"

	"github.com/rolandbouwer/appdash/internal/remote"
)

// Segments holds the two disjoint display views of a filtered set.
type Segments struct {
	Production    []remote.Application
	NonProduction []remote.Application
}

// Apply keeps applications whose name or any tag name contains the query,
// case-insensitively. An empty or whitespace-only query returns the input
// unchanged. Relative order is preserved.
func Apply(apps []remote.Application, query string) []remote.Application {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return apps
	}

	var out []remote.Application
	for _, app := range apps {
		if Matches(app, q) {
			out = append(out, app)
		}
	}
	return out
}

// Matches reports whether a single application matches an already-lowercased
// query, against its name or any one of its tag names.
func Matches(app remote.Application, lowered string) bool {
	if strings.Contains(strings.ToLower(app.Name), lowered) {
		return true
	}
	for _, tag := range app.Tags {
		if strings.Contains(strings.ToLower(tag.Name), lowered) {
			return true
		}
	}
	return false
}

// Segment partitions applications into production and non-production views,
// preserving the relative order of the input. The two views are exhaustive
// and disjoint.
func Segment(apps []remote.Application) Segments {
	var seg Segments
	for _, app := range apps {
		if app.IsProduction {
			seg.Production = append(seg.Production, app)
		} else {
			seg.NonProduction = append(seg.NonProduction, app)
		}
	}
	return seg
}
