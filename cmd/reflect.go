package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	reportadapter "github.com/3-14mpa/AITO/internal/adapters/render/report"
	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/spf13/cobra"
)

func newReflectCmd(app *app) *cobra.Command {
	var personaID string
	var daysAgo int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Audit one day of a persona's conversations",
		Long:  "reflect builds the persona's daily context, runs the factual, thematic and insight analyses, has the arbiter audit them and checks the result against the persona's constitutional principle.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if daysAgo < 0 {
				return errors.New("--days-ago must not be negative")
			}

			svc, err := app.reflectionService(cmd.Context())
			if err != nil {
				return err
			}

			reflectCmd := application.ReflectCommand{
				PersonaID: domain.PersonaID(personaID),
				SessionID: app.cfg.SessionID,
				DaysAgo:   daysAgo,
			}
			if reflectCmd.PersonaID == "" {
				reflectCmd.PersonaID = app.cfg.ReflectionPersona
			}

			var report application.ReflectionReport
			run := func(ctx context.Context) error {
				var runErr error
				report, runErr = svc.Run(ctx, reflectCmd)
				return runErr
			}

			if asJSON {
				err = run(cmd.Context())
			} else {
				label := fmt.Sprintf("Reflecting on %s...", reflectCmd.PersonaID)
				err = runReflectionSpinner(cmd.Context(), cmd.ErrOrStderr(), label, run)
			}
			if err != nil {
				return fmt.Errorf("run reflection: %w", err)
			}

			return writeReportOutput(cmd, app, report, asJSON)
		},
	}

	cmd.Flags().StringVar(&personaID, "persona", "", "Persona to audit (defaults to reflection.persona)")
	cmd.Flags().IntVar(&daysAgo, "days-ago", 0, "Day to audit: 0 for today, 1 for yesterday")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeReportOutput(cmd *cobra.Command, app *app, report application.ReflectionReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	rendered, err := app.reportRenderer(report, reportadapter.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
