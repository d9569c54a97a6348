package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListStudentsCmd creates the list-students command.
func ListStudentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-students",
		Short: "List every ingested student and their current class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, initial, err := app.Source.Load(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			classOf := make(map[string]string, len(snapshot.StudentOrder))
			for className, ids := range initial {
				for _, id := range ids {
					classOf[id] = className
				}
			}

			fmt.Printf("\n%d students\n\n", len(snapshot.StudentOrder))
			for _, id := range snapshot.StudentOrder {
				s := snapshot.Students[id]
				fmt.Printf("- %-20s %-6s class=%-6s LV2=%-4s OPT=%-6s\n", s.DisplayName(), id, classOf[id], s.LV2, s.OPT)
			}

			return nil
		},
	}
}
