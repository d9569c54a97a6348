package optimizer

import (
	"math/rand"

	"github.com/amoreau/repartition/pkg/cost"
	"github.com/amoreau/repartition/pkg/model"
	"go.uber.org/zap"
)

// State is the optimizer's lifecycle state.
type State int

const (
	Running State = iota
	Stagnating
	Converged
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stagnating:
		return "stagnating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result reports how a run ended: the swap counts per phase, the
// final state, and the classes still above roughThreshold after
// convergence, a reviewer's shortlist, not a hard failure.
type Result struct {
	State         State
	SwapsApplied  int // two-way phase
	SwapsThreeWay int
	StillRough    []string
}

// roughThreshold flags a class as worth a human's attention after
// convergence. It is intentionally not part of Config: it never
// changes optimizer behavior, only what gets reported.
const roughThreshold = 500.0

// Run executes the two-way phase to convergence, then the three-way
// cycle phase. rng must be seeded by the caller; Run never consults a
// process-wide random source, so a fixed seed reproduces a
// bit-identical run.
func Run(a *model.Assignment, cfg Config, rng *rand.Rand, logger *zap.Logger) Result {
	cohort := model.ComputeCohortStats(a)

	result := twoWayPhase(a, cohort, cfg, rng, logger)
	result.SwapsThreeWay = threeWayPhase(a, cohort, cfg, rng, logger)
	result.StillRough = stillRough(a, cohort, cfg)

	return result
}

func twoWayPhase(a *model.Assignment, cohort model.CohortStats, cfg Config, rng *rand.Rand, logger *zap.Logger) Result {
	stagnation := 0
	swaps := 0
	state := Running

	for i := 0; i < cfg.MaxSwaps; i++ {
		worst, ok := worstClass(a, cohort, cfg)
		if !ok {
			state = Converged
			break
		}

		partner, ok := SelectPartner(a, worst, cohort, cfg, rng)
		if !ok {
			if stagnation > 10 {
				state = Converged
				break
			}
			stagnation++
			continue
		}

		move := TwoWaySearch(a, worst, partner, cohort, cfg, rng)
		if move != nil && move.Gain > 1e-4 {
			a.Swap(move.StudentA, move.StudentB)
			stagnation = 0
			swaps++
			logSwap(logger, swaps, move)
		} else {
			stagnation++
		}

		if stagnation >= cfg.StagnationLimit {
			state = Converged
			break
		}
	}

	if state != Converged {
		state = Exhausted
	}

	return Result{State: state, SwapsApplied: swaps}
}

func threeWayPhase(a *model.Assignment, cohort model.CohortStats, cfg Config, rng *rand.Rand, logger *zap.Logger) int {
	const maxOuterIterations = 200

	applied := 0
	for i := 0; i < maxOuterIterations; i++ {
		rotation := ThreeWaySearch(a, cohort, cfg, rng)
		if rotation == nil {
			break
		}
		ApplyRotation(a, rotation)
		applied++
		if logger != nil {
			logger.Debug("three-way rotation applied",
				zap.Int("rotation_index", applied),
				zap.Float64("gain", rotation.Gain),
				zap.String("student_a", rotation.StudentA),
				zap.String("student_b", rotation.StudentB),
				zap.String("student_c", rotation.StudentC))
		}
	}

	return applied
}

func stillRough(a *model.Assignment, cohort model.CohortStats, cfg Config) []string {
	var rough []string
	for _, name := range model.StableClassNames(a) {
		score := cost.Score(a, name, cohort, cfg.Weights, cfg.Targets)
		if score > roughThreshold {
			rough = append(rough, name)
		}
	}
	return rough
}

func logSwap(logger *zap.Logger, swapIndex int, move *Move) {
	if logger == nil {
		return
	}
	if swapIndex <= 5 || swapIndex%10 == 0 {
		logger.Info("swap applied",
			zap.Int("swap_index", swapIndex),
			zap.Float64("gain", move.Gain),
			zap.String("student_a", move.StudentA),
			zap.String("student_b", move.StudentB),
			zap.String("class_a", move.ClassA),
			zap.String("class_b", move.ClassB))
	}
}
