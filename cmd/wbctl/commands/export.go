package commands

import (
	"fmt"
	"os"

	"watchbill-admin/internal/admin"

	"github.com/spf13/cobra"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the watch bill roster CSV",
		Long:  `Writes the roster export of active sailors, or of every sailor with --all. Use -o - for stdout.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Sailors.ExportRoster(all)
			if err != nil {
				return fmt.Errorf("failed to export roster: %w", err)
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			good.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", admin.ExportFilename, "Output file, or - for stdout")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive sailors")
	return cmd
}
