// Package doctor runs diagnostic checks for the appdash setup: the
// configuration file and the health service it points at.
package doctor

import "fmt"

// CheckStatus is the outcome class of a single check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckResult is what a check reports back. Suggestion is only shown
// for warn and fail results.
type CheckResult struct {
	Name       string
	Status     CheckStatus
	Message    string
	Suggestion string
}

// Check is one diagnostic probe. Category groups related checks in the
// report ("CONFIG", "SERVICE").
type Check interface {
	Name() string
	Category() string
	Run() CheckResult
}

// RunAll executes every check in order. Checks are cheap and few, so
// there is no need to run them concurrently.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// CountByStatus tallies results per status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures reports whether any check failed outright.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// Summary is the one-line closing verdict for the report.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	issues := counts[StatusWarn] + counts[StatusFail]
	if issues == 0 {
		return "Everything looks good"
	}
	if issues == 1 {
		return "1 issue found"
	}
	return fmt.Sprintf("%d issues found", issues)
}
