package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amoreau/repartition/pkg/audit"
	"github.com/amoreau/repartition/pkg/optimizer"
	"github.com/amoreau/repartition/pkg/store"
)

// OptimizeCmd creates the optimize command.
func OptimizeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Assign students to destination classes via local search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			app.Logger.Info("starting optimize run", zap.Int64("seed", seed), zap.Bool("dry_run", dryRun))

			snapshot, initial, err := app.Source.Load(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			cfg := optimizer.FromAppConfig(app.Cfg.Optimizer, app.Cfg.HasAntinomyAttribute)
			rng := rand.New(rand.NewSource(seed))

			startedAt := time.Now()
			result := optimizer.Optimize(snapshot, initial, cfg, rng, app.Logger)

			fmt.Printf("\noptimize run complete\n\n")
			fmt.Printf("ok:              %v\n", result.OK)
			fmt.Printf("swaps applied:   %d\n", result.SwapsApplied)
			fmt.Printf("three-way swaps: %d\n", result.SwapsThreeWay)
			fmt.Printf("exhausted:       %v\n", result.Exhausted)

			if len(result.Violations) > 0 {
				fmt.Printf("\nvalidation violations:\n")
				for _, v := range result.Violations {
					fmt.Printf("  class %s: antinomy code %s shared by %d students: %v\n", v.ClassName, v.AntinomyCode, v.Count, v.Students)
				}
			}

			if dryRun || app.Store == nil {
				return nil
			}

			report := audit.Run(result.FinalAssignment, snapshot.Offerings)
			run := store.RunRecord{
				StartedAt:     startedAt,
				FinishedAt:    time.Now(),
				State:         stateLabel(result),
				SwapsApplied:  result.SwapsApplied,
				SwapsThreeWay: result.SwapsThreeWay,
				Exhausted:     result.Exhausted,
				Violations:    result.Violations,
				AuditReport:   &report,
			}
			if err := app.Store.SaveRun(app.Ctx, run); err != nil {
				return fmt.Errorf("failed to persist run: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "PRNG seed (defaults to current time)")
	cmd.Flags().Bool("dry-run", false, "Run without persisting the result")

	return cmd
}

func stateLabel(result optimizer.OptimizeResult) string {
	if result.Exhausted {
		return "Exhausted"
	}
	return "Converged"
}
