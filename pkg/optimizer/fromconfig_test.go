package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amoreau/repartition/internal/config"
)

func TestFromAppConfig_ProjectsEveryField(t *testing.T) {
	cfg := config.OptimizerConfig{
		MaxSwaps:        100,
		StagnationLimit: 10,
		WDistrib:        1,
		WParity:         2,
		WProfiles:       3,
		WFriends:        4,
		HeadMin:         2,
		HeadMax:         5,
		Niv1Max:         4,
		Niv1Min:         0,
		DefaultLV2:      "ESP",
		SpecializedOPT:  []string{"LATIN"},
		ExplorationRate: 0.3,
		SampleSize:      15,
	}

	out := FromAppConfig(cfg, true)

	assert.Equal(t, 100, out.MaxSwaps)
	assert.Equal(t, 10, out.StagnationLimit)
	assert.Equal(t, 1.0, out.Weights.WDistrib)
	assert.Equal(t, 5, out.Targets.HeadMax)
	assert.Equal(t, "ESP", out.DefaultLV2)
	assert.Equal(t, []string{"LATIN"}, out.SpecializedOPT)
	assert.Equal(t, 0.3, out.ExplorationRate)
	assert.Equal(t, 15, out.SampleSize)
	assert.True(t, out.HasAntinomyAttribute)
}
