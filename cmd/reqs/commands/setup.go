package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/ui/output"
	"go.trai.ch/reqs/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	var (
		format string
		dest   string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Assemble the distribution descriptor for the packaging tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Setup(cmd.Context(), app.SetupOptions{Cwd: dirFlag(cmd)})
			if err != nil {
				return err
			}

			if dest == "" {
				return app.WriteDistribution(cmd.OutOrStdout(), res.Distribution, format)
			}

			var buf bytes.Buffer
			if err := app.WriteDistribution(&buf, res.Distribution, format); err != nil {
				return err
			}
			if err := os.WriteFile(dest, buf.Bytes(), domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dest)
			}

			out := output.New(cmd.ErrOrStderr())
			mark := out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %s\n", mark, dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", app.FormatJSON, "Descriptor format: 'json' or 'yaml'")
	cmd.Flags().StringVarP(&dest, "output", "o", "", "Write the descriptor to this file instead of stdout")

	return cmd
}
