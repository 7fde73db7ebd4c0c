package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rolandbouwer/appdash/internal/remote"
)

// checkTimeout bounds each service probe.
const checkTimeout = 10 * time.Second

// ServiceReachableCheck verifies the health service answers requests.
type ServiceReachableCheck struct {
	Client *remote.Client
}

func (c *ServiceReachableCheck) Name() string     { return "service_reachable" }
func (c *ServiceReachableCheck) Category() string { return "SERVICE" }

func (c *ServiceReachableCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	start := time.Now()
	apps, err := c.Client.ListApplications(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot reach %s: %v", c.Client.BaseURL(), err),
			Suggestion: "Check that the health service is running and api_url points at it",
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s answered in %dms (%d applications)",
			c.Client.BaseURL(), time.Since(start).Milliseconds(), len(apps)),
	}
}

// ServiceDataCheck warns when the service has nothing to show yet.
type ServiceDataCheck struct {
	Client *remote.Client
}

func (c *ServiceDataCheck) Name() string     { return "service_data" }
func (c *ServiceDataCheck) Category() string { return "SERVICE" }

func (c *ServiceDataCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	apps, err := c.Client.ListApplications(ctx)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Cannot list applications: %v", err),
		}
	}

	if len(apps) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No applications registered",
			Suggestion: "Run 'appdash apps add' to register one",
		}
	}

	unchecked := 0
	for _, app := range apps {
		if _, ok := app.LatestCheck(); !ok {
			unchecked++
		}
	}
	if unchecked == len(apps) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No application has health checks yet",
			Suggestion: "The service records checks on its own schedule; wait a cycle",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d application(s) with check history", len(apps)-unchecked),
	}
}
