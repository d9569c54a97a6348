package optimizer

import (
	"math/rand"

	"github.com/amoreau/repartition/pkg/model"
	"github.com/amoreau/repartition/pkg/validate"
	"go.uber.org/zap"
)

// OptimizeResult is the top-level optimize() interface: ok,
// the two swap counts, any antinomy violations found by the final
// validation pass, and the assignment the run produced.
type OptimizeResult struct {
	OK              bool
	SwapsApplied    int
	SwapsThreeWay   int
	Exhausted       bool
	Violations      []validate.Violation
	FinalAssignment *model.Assignment
}

// Optimize runs the driver to convergence (or exhaustion) starting
// from initial, then validates the result. An empty cohort returns
// {ok: true, swaps_applied: 0} immediately
// without consulting rng or logger.
func Optimize(snapshot *model.Snapshot, initial map[string][]string, cfg Config, rng *rand.Rand, logger *zap.Logger) OptimizeResult {
	assignment := model.NewAssignment(snapshot, initial)

	if len(snapshot.StudentOrder) == 0 {
		return OptimizeResult{OK: true, FinalAssignment: assignment}
	}

	result := Run(assignment, cfg, rng, logger)

	report := validate.Run(assignment, cfg.HasAntinomyAttribute)

	return OptimizeResult{
		OK:              report.OK,
		SwapsApplied:    result.SwapsApplied,
		SwapsThreeWay:   result.SwapsThreeWay,
		Exhausted:       result.State == Exhausted,
		Violations:      report.Violations,
		FinalAssignment: assignment,
	}
}
