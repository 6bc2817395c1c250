package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/3-14mpa/AITO/internal/adapters/render/transcript"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var sessionID string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the shared conversation log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			if sessionID == "" {
				sessionID = app.cfg.SessionID
			}

			store, err := app.history(cmd.Context())
			if err != nil {
				return err
			}
			messages, err := store.List(cmd.Context(), sessionID)
			if err != nil {
				return fmt.Errorf("list session %s: %w", sessionID, err)
			}
			if limit > 0 && len(messages) > limit {
				messages = messages[len(messages)-limit:]
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(messages)
			}

			if len(messages) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "session %s is empty\n", sessionID)
				return err
			}

			publisher := transcript.NewPublisher(cmd.OutOrStdout())
			for _, msg := range messages {
				if err := publisher.Publish(cmd.Context(), msg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session id (defaults to session.id)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the last N messages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
