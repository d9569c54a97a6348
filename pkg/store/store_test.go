package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoreau/repartition/pkg/validate"
)

func TestRunRecord_ViolationsRoundTripThroughJSON(t *testing.T) {
	run := RunRecord{
		RunID:         uuid.New(),
		StartedAt:     time.Now(),
		FinishedAt:    time.Now(),
		State:         "Converged",
		SwapsApplied:  3,
		SwapsThreeWay: 1,
		Violations: []validate.Violation{
			{ClassName: "6A", AntinomyCode: "D1", Count: 2, Students: []string{"Lea Martin", "Tom Durand"}},
		},
	}

	data, err := json.Marshal(run.Violations)
	require.NoError(t, err)

	var roundTripped []validate.Violation
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	if assert.Len(t, roundTripped, 1) {
		assert.Equal(t, run.Violations[0], roundTripped[0])
	}
}
