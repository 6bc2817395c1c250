package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/3-14mpa/AITO/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Gemini API key",
	}

	cmd.AddCommand(newAuthSetKeyCmd(app), newAuthRemoveKeyCmd(app), newAuthStatusCmd(app))

	return cmd
}

func newAuthSetKeyCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the Gemini API key in the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("api key value is empty")
			}

			ref := app.cfg.Gemini.APIKeyRef
			if err := app.secretStore.Put(cmd.Context(), ref, value); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", ref)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "API key value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAuthRemoveKeyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-key",
		Short: "Remove the stored Gemini API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := app.cfg.Gemini.APIKeyRef
			if err := app.secretStore.Delete(cmd.Context(), ref); err != nil {
				return fmt.Errorf("remove api key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", ref)
			return err
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a Gemini API key is available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := app.cfg.Gemini.APIKeyRef
			key, err := app.secretStore.Get(cmd.Context(), ref)
			switch {
			case errors.Is(err, domain.ErrSecretNotFound):
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: missing\n", ref)
				return err
			case err != nil:
				return fmt.Errorf("read api key: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: configured (%s)\n", ref, maskSecret(key))
			return err
		},
	}
}

func maskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
