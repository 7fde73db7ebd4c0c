package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/logger"
	"github.com/rolandbouwer/appdash/internal/reconcile"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/state"
	"github.com/rolandbouwer/appdash/internal/trend"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// commandTimeout bounds one-shot CLI requests against the service.
const commandTimeout = 15 * time.Second

// setup bundles what a mutation command needs.
type setup struct {
	client     *remote.Client
	store      *state.Store
	reconciler *reconcile.Reconciler
	apps       []remote.Application
	tags       []remote.Tag
}

// loadState fetches the current applications and tags and seeds a store
// so mutations reconcile against fresh data.
func loadState(ctx context.Context) (*setup, error) {
	_, client, err := loadSetup()
	if err != nil {
		return nil, err
	}

	apps, err := client.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := client.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	store := state.NewStore()
	store.ApplySnapshot(apps, tags, time.Now())

	return &setup{
		client:     client,
		store:      store,
		reconciler: reconcile.New(client, store, logger.Default()),
		apps:       apps,
		tags:       tags,
	}, nil
}

// findAppByName locates an application by case-insensitive name.
func findAppByName(apps []remote.Application, name string) (remote.Application, error) {
	for _, app := range apps {
		if strings.EqualFold(app.Name, name) {
			return app, nil
		}
	}
	return remote.Application{}, errors.New(errors.ErrValidation,
		fmt.Sprintf("No application named '%s'", name),
		"Run 'appdash apps list' to see what exists")
}

// appsListCommand prints the application table.
func appsListCommand() error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	_, client, err := loadSetup()
	if err != nil {
		return err
	}

	apps, err := client.ListApplications(ctx)
	if err != nil {
		return err
	}

	rows := make([]ui.AppTableRow, 0, len(apps))
	for _, app := range apps {
		row := ui.AppTableRow{
			Name:    app.Name,
			URL:     app.URL,
			Latency: "-",
			Tags:    strings.Join(app.TagNames(), ", "),
		}
		if check, ok := app.LatestCheck(); ok {
			row.Status = check.Status
			if check.ResponseTime != nil {
				row.Latency = trend.FormatResponseTime(*check.ResponseTime)
			}
		}
		rows = append(rows, row)
	}

	fmt.Println(ui.RenderAppTable(rows))
	return nil
}

// appsAddCommand registers a new application, interactively unless both
// --name and --url were given.
func appsAddCommand(name, url string, production bool, tagNames []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	in := remote.ApplicationInput{
		Name:         name,
		URL:          url,
		IsProduction: production,
		Tags:         tagNames,
	}

	interactive := name == "" || url == ""
	if interactive {
		if err := runAppForm(&in, s.tags, "Add application"); err != nil {
			return err
		}
	}

	for {
		app, err := s.reconciler.CreateApplication(ctx, in)
		if err == nil {
			fmt.Println(ui.SuccessStyle().Render("✓ Added " + app.Name))
			return nil
		}
		if !interactive || !retryPrompt(err) {
			return err
		}
		if err := runAppForm(&in, s.tags, "Add application"); err != nil {
			return err
		}
	}
}

// appsEditCommand updates an application through a pre-filled form.
func appsEditCommand(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	app, err := findAppByName(s.apps, name)
	if err != nil {
		return err
	}

	in := remote.ApplicationInput{
		Name:         app.Name,
		URL:          app.URL,
		IsProduction: app.IsProduction,
		Tags:         app.TagNames(),
	}

	if err := runAppForm(&in, s.tags, "Edit "+app.Name); err != nil {
		return err
	}

	for {
		updated, err := s.reconciler.UpdateApplication(ctx, app.ID, in)
		if err == nil {
			fmt.Println(ui.SuccessStyle().Render("✓ Updated " + updated.Name))
			return nil
		}
		if !retryPrompt(err) {
			return err
		}
		if err := runAppForm(&in, s.tags, "Edit "+app.Name); err != nil {
			return err
		}
	}
}

// appsDeleteCommand removes an application after confirmation.
func appsDeleteCommand(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	app, err := findAppByName(s.apps, name)
	if err != nil {
		return err
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete '%s'?", app.Name)).
				Description(app.URL).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrValidation,
			"Failed to get confirmation", "")
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := s.reconciler.DeleteApplication(ctx, app.ID); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle().Render("✓ Deleted " + app.Name))
	return nil
}

// runAppForm collects application fields with huh, pre-filled from in.
func runAppForm(in *remote.ApplicationInput, tags []remote.Tag, title string) error {
	options := make([]huh.Option[string], 0, len(tags))
	for _, tag := range tags {
		options = append(options, huh.NewOption(tag.Name, tag.Name))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Application name").
				Placeholder("checkout").
				Value(&in.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Description("URL to monitor").
				Placeholder("https://checkout.example.com").
				Value(&in.URL).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("URL is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Production application?").
				Value(&in.IsProduction),
		),
	}

	if len(options) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(options...).
				Value(&in.Tags),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrValidation,
			"Failed to get user input", "")
	}
	return nil
}

// retryPrompt shows the failure and asks whether to edit and retry.
func retryPrompt(cause error) bool {
	fmt.Println(ui.ErrorStyle().Render(errors.Summary(cause)))

	var retry bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Edit and try again?").
				Value(&retry),
		),
	)
	if err := form.Run(); err != nil {
		return false
	}
	return retry
}
