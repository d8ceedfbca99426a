package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SeedCmd creates the seed command
func SeedCmd(app *AppContext) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert quals, sailors and watch events from YAML roster files",
		Long: `Loads one or more roster files (or directories of them). Quals and sailors are
matched by name; a watch already recorded for the same date and position is skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range files {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				load := app.Seeder.LoadFile
				if info.IsDir() {
					load = app.Seeder.LoadDir
				}
				stats, err := load(path)
				if err != nil {
					return fmt.Errorf("failed to seed %s: %w", path, err)
				}

				fmt.Fprintf(out, "%s: %s quals created, %s sailors created, %d updated, %s watches created, %s skipped\n",
					path,
					good.Sprint(stats.QualsCreated),
					good.Sprint(stats.SailorsCreated),
					stats.SailorsUpdated,
					good.Sprint(stats.EventsCreated),
					warn.Sprint(stats.EventsSkipped))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Roster YAML file or directory (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
