package optimizer

import (
	"github.com/amoreau/repartition/internal/config"
	"github.com/amoreau/repartition/pkg/cost"
)

// FromAppConfig projects the loaded application configuration's
// optimizer table into the Config this package runs on.
func FromAppConfig(cfg config.OptimizerConfig, hasAntinomyAttribute bool) Config {
	return Config{
		MaxSwaps:        cfg.MaxSwaps,
		StagnationLimit: cfg.StagnationLimit,
		Weights: cost.Weights{
			WDistrib:  cfg.WDistrib,
			WParity:   cfg.WParity,
			WProfiles: cfg.WProfiles,
			WFriends:  cfg.WFriends,
		},
		Targets: cost.Targets{
			HeadMin: cfg.HeadMin,
			HeadMax: cfg.HeadMax,
			Niv1Max: cfg.Niv1Max,
			Niv1Min: cfg.Niv1Min,
		},
		DefaultLV2:           cfg.DefaultLV2,
		SpecializedOPT:       cfg.SpecializedOPT,
		ExplorationRate:      cfg.ExplorationRate,
		SampleSize:           cfg.SampleSize,
		HasAntinomyAttribute: hasAntinomyAttribute,
	}
}
