package cmd

import (
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/application"
	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMeetCmd(app *app) *cobra.Command {
	var participants []string
	var rounds int

	cmd := &cobra.Command{
		Use:   "meet <task>",
		Short: "Run a moderated meeting of the personas on a task",
		Long:  "meet records the task in the shared log, lets the participants speak in round-robin order and prints each turn as it is published.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.TrimSpace(strings.Join(args, " "))
			if task == "" {
				return fmt.Errorf("task is empty")
			}
			if rounds < 0 {
				return fmt.Errorf("--rounds must not be negative")
			}

			ids := make([]domain.PersonaID, 0, len(participants))
			for _, raw := range participants {
				if id := strings.TrimSpace(raw); id != "" {
					ids = append(ids, domain.PersonaID(id))
				}
			}

			orchestrator, err := app.meetingOrchestrator(cmd.Context(), cmd.OutOrStdout(), application.MeetingConfig{
				Participants: ids,
				MaxRounds:    rounds,
			})
			if err != nil {
				return err
			}

			handle, err := orchestrator.StartMeeting(cmd.Context(), application.StartMeetingCommand{
				SessionID:   app.cfg.SessionID,
				Task:        task,
				InitiatedBy: app.cfg.UserID,
			})
			if err != nil {
				return fmt.Errorf("start meeting: %w", err)
			}
			app.logger.Debug("meeting started", zap.String("meeting_id", handle.ID))

			result, err := handle.Wait(cmd.Context())
			if err != nil {
				// A cancelled meeting still records its ATOMOD_ERROR message.
				<-handle.Done()
				return fmt.Errorf("meeting %s: %w", handle.ID, err)
			}

			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "meeting %s finished after %d turns\n", result.MeetingID, result.Turns)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&participants, "participant", nil, "Participant persona id in speaking order (repeatable; defaults to meeting.participants)")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Rounds before the meeting ends (defaults to meeting.max_rounds)")

	return cmd
}
