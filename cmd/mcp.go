package cmd

import (
	"github.com/3-14mpa/AITO/internal/adapters/mcpserver"
	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/version"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve meetings, reflection and memory search as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			orchestrator, err := app.meetingOrchestrator(ctx, cmd.ErrOrStderr(), application.MeetingConfig{})
			if err != nil {
				return err
			}
			reflector, err := app.reflectionService(ctx)
			if err != nil {
				return err
			}
			memory, err := app.memorySearch(ctx)
			if err != nil {
				return err
			}

			srv := mcpserver.New(ctx, mcpserver.Config{
				Version:          version.Version,
				SessionID:        app.cfg.SessionID,
				ReflectionTarget: app.cfg.ReflectionPersona,
			}, orchestrator, reflector, memory, mcpserver.WithLogger(app.logger))

			app.logger.Info("serving mcp over stdio")
			err = srv.ServeStdio()
			orchestrator.Wait()
			return err
		},
	}
}
