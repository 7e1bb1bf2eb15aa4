package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/reqs/internal/app"
)

func (c *CLI) newRequirementsCmd() *cobra.Command {
	var (
		file    string
		newline string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:     "requirements",
		Aliases: []string{"list"},
		Short:   "Print the dependency declarations of the requirements manifest",
		Long: "Print the dependency declarations of the requirements manifest, one per line.\n" +
			"Each declaration is quoted so that the character replacing the newline stays visible.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reqs, err := c.app.Requirements(cmd.Context(), app.RequirementsOptions{
				Cwd:     dirFlag(cmd),
				File:    file,
				Newline: newline,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reqs)
			}

			for _, r := range reqs {
				if _, err := fmt.Fprintf(out, "%q\n", r.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read this manifest instead of the one named in reqs.yaml")
	cmd.Flags().StringVar(&newline, "newline", "", "Newline handling: 'space' or 'strip' (default from reqs.yaml, else 'space')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the declarations as a JSON array")

	return cmd
}
