package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AckCmd creates the ack command
func AckCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ack <sailor-id>...",
		Short: "Mark the June watch bill as acknowledged for the given sailors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, 0, len(args))
			seen := make(map[uuid.UUID]bool, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid sailor ID %q: %w", arg, err)
				}
				if seen[id] {
					continue
				}
				seen[id] = true
				ids = append(ids, id)
			}

			updated, err := app.Sailors.Acknowledge(cmd.Context(), ids)
			if err != nil {
				return fmt.Errorf("failed to acknowledge: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s of %d sailors updated\n", good.Sprint(updated), len(ids))
			if unchanged := len(ids) - updated; unchanged > 0 {
				warn.Fprintf(cmd.ErrOrStderr(), "%d already acknowledged\n", unchanged)
			}
			return nil
		},
	}
}
