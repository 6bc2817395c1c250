package cmd

import (
	"errors"
	"fmt"

	tomlrepo "github.com/3-14mpa/AITO/internal/adapters/repo/toml"
	yamlrepo "github.com/3-14mpa/AITO/internal/adapters/repo/yaml"
	"github.com/spf13/cobra"
)

func newInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default persona and constitution files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := app.personaRepository()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch err := repo.Init(cmd.Context(), force); {
			case errors.Is(err, tomlrepo.ErrPersonasFileExists):
				fmt.Fprintf(out, "kept existing %s\n", repo.Path())
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "wrote %s\n", repo.Path())
			}

			path := app.cfg.ConstitutionPath
			switch err := yamlrepo.WriteDefaultConstitution(cmd.Context(), path, force); {
			case errors.Is(err, yamlrepo.ErrConstitutionFileExists):
				fmt.Fprintf(out, "kept existing %s\n", path)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "wrote %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files with the defaults")

	return cmd
}
