// Package trend turns an application's health-check history into chart
// series and report rows.
//
// The remote service returns history most-recent-first; charts want
// chronological order, so the aggregation reverses once and derives both
// the response-time series and the uptime series from the same pass.
package trend

import (
	"fmt"

	"github.com/rolandbouwer/appdash/internal/remote"
)

// timeLayout formats check timestamps for the chart x-axis.
const timeLayout = "15:04:05"

// Point is one x-axis entry shared by the response-time line and the
// uptime bar. Response is nil when the probe recorded no response time.
type Point struct {
	Time     string
	Response *float64
	Up       int
}

// Row is one export-table line for an application.
type Row struct {
	Name         string
	URL          string
	Status       string
	ResponseTime string
}

// ChartSeries maps a most-recent-first history to chronological chart
// points. Series length always equals the input length.
func ChartSeries(checks []remote.HealthCheck) []Point {
	if len(checks) == 0 {
		return nil
	}

	points := make([]Point, len(checks))
	for i, check := range checks {
		up := 0
		if check.Up() {
			up = 1
		}
		// Reverse: input index 0 is newest, output index 0 is oldest.
		points[len(checks)-1-i] = Point{
			Time:     check.CheckedAt.Local().Format(timeLayout),
			Response: check.ResponseTime,
			Up:       up,
		}
	}
	return points
}

// ResponseValues extracts the response-time series as floats for sparkline
// rendering. Missing response times plot as zero.
func ResponseValues(points []Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	values := make([]float64, len(points))
	for i, p := range points {
		if p.Response != nil {
			values[i] = *p.Response
		}
	}
	return values
}

// UptimeValues extracts the binary uptime series as floats.
func UptimeValues(points []Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p.Up)
	}
	return values
}

// ReportRows maps applications to export rows using only each
// application's newest inline check. No history reads as down with no
// response time; for reporting, absence of data is an unknown outage,
// not an error.
func ReportRows(apps []remote.Application) []Row {
	if len(apps) == 0 {
		return nil
	}

	rows := make([]Row, len(apps))
	for i, app := range apps {
		rows[i] = Row{
			Name:         app.Name,
			URL:          app.URL,
			Status:       "Down",
			ResponseTime: "-",
		}
		latest, ok := app.LatestCheck()
		if !ok {
			continue
		}
		if latest.Up() {
			rows[i].Status = "Up"
		}
		if latest.ResponseTime != nil {
			rows[i].ResponseTime = FormatResponseTime(*latest.ResponseTime)
		}
	}
	return rows
}

// FormatResponseTime renders a response time in seconds to two decimals
// with its unit, the way cards and report cells display it.
func FormatResponseTime(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}
