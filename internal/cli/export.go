package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/filter"
	"github.com/rolandbouwer/appdash/internal/report"
	"github.com/rolandbouwer/appdash/internal/trend"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// exportCommand writes the PDF health report. An empty out falls back to
// the configured export file.
func exportCommand(out, query string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cfg, client, err := loadSetup()
	if err != nil {
		return err
	}
	if out == "" {
		out = cfg.Export.File
	}

	apps, err := client.ListApplications(ctx)
	if err != nil {
		return err
	}

	matched := filter.Apply(apps, query)
	segments := filter.Segment(matched)

	f, err := os.Create(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Cannot create '%s'", out),
			"Check that the directory exists and is writable")
	}
	defer f.Close()

	if err := report.WritePDF(f, trend.ReportRows(segments.Production), trend.ReportRows(segments.NonProduction)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to finish writing '%s'", out), "")
	}

	fmt.Println(ui.SuccessStyle().Render(
		fmt.Sprintf("✓ Exported %d application(s) to %s", len(matched), out)))
	return nil
}
