package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amoreau/repartition/internal/config"
	"github.com/amoreau/repartition/pkg/audit"
	"github.com/amoreau/repartition/pkg/model"
	"github.com/amoreau/repartition/pkg/validate"
)

// AuditCmd creates the audit command: it certifies the currently
// ingested assignment without running the optimizer, the way a
// scheduled integrity check should.
func AuditCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Audit the currently assigned roster for quota and duplication violations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, initial, err := app.Source.Load(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			assignment := model.NewAssignment(snapshot, initial)

			validation := validate.Run(assignment, app.Cfg.HasAntinomyAttribute)
			report := audit.Run(assignment, snapshot.Offerings)

			fmt.Printf("\naudit report\n\n")
			for _, totals := range report.ByClass {
				fmt.Printf("class %-8s total=%d F=%d M=%d fixed=%d movable=%d\n",
					totals.ClassName, totals.Total, totals.FemaleCount, totals.MaleCount, totals.FixedCount, totals.MovableCount)
			}

			if validation.NotChecked {
				fmt.Printf("\nantinomy not validated: attribute absent from data model\n")
			} else if !validation.OK {
				fmt.Printf("\nduplicated antinomy codes:\n")
				for _, v := range validation.Violations {
					fmt.Printf("  class %s: code %s shared by %v\n", v.ClassName, v.AntinomyCode, v.Students)
				}
			} else {
				fmt.Printf("\nno antinomy duplication found\n")
			}

			if len(report.LV2Violations) > 0 {
				fmt.Printf("\nLV2 offering violations: %d\n", len(report.LV2Violations))
			}
			if len(report.OPTViolations) > 0 {
				fmt.Printf("OPT offering violations: %d\n", len(report.OPTViolations))
			}
			if len(report.QuotaDeviations) > 0 {
				fmt.Printf("quota deviations: %d\n", len(report.QuotaDeviations))
			}

			if next, ok := config.NextAuditAt(app.Cfg.AuditSchedules, time.Now()); ok {
				fmt.Printf("\nnext scheduled audit: %s\n", next.Format(time.RFC3339))
			}

			return nil
		},
	}
}
