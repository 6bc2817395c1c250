package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPersonaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Inspect the configured personas",
	}

	cmd.AddCommand(newPersonaListCmd(app))

	return cmd
}

func newPersonaListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List personas in definition order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.personas(cmd.Context())
			if err != nil {
				return err
			}
			personas, err := catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMODEL\tMEETINGS\tTOOLS")
			for _, persona := range personas {
				eligible := "no"
				if persona.MeetingEligible {
					eligible = "yes"
				}
				tools := "-"
				if len(persona.Tools) > 0 {
					tools = strings.Join(persona.Tools, ",")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", persona.ID, persona.Model, eligible, tools)
			}
			return w.Flush()
		},
	}
}
