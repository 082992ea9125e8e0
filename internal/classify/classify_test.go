package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amponce/va-design-system-monitor/internal/types"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category types.MaturityCategory
		level    types.MaturityLevel
		want     types.Status
	}{
		{"use best_practice", types.CategoryUse, types.LevelBestPractice, types.StatusRecommended},
		{"use deployed", types.CategoryUse, types.LevelDeployed, types.StatusStable},
		{"use candidate", types.CategoryUse, types.LevelCandidate, types.StatusExperimental},
		{"use available", types.CategoryUse, types.LevelAvailable, types.StatusAvailableWithIssues},
		{"use unknown level", types.CategoryUse, types.MaturityLevel("bogus"), types.StatusUnknown},
		{"caution dominates best_practice", types.CategoryCaution, types.LevelBestPractice, types.StatusUseWithCaution},
		{"caution dominates deployed", types.CategoryCaution, types.LevelDeployed, types.StatusUseWithCaution},
		{"caution dominates unknown", types.CategoryCaution, types.MaturityLevel(""), types.StatusUseWithCaution},
		{"empty category unknown level", types.MaturityCategory(""), types.MaturityLevel(""), types.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, recommendation := Classify(tt.category, tt.level)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, recommendation)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	for _, category := range []types.MaturityCategory{types.CategoryUse, types.CategoryCaution} {
		for _, level := range []types.MaturityLevel{
			types.LevelBestPractice, types.LevelDeployed, types.LevelCandidate,
			types.LevelAvailable, types.LevelUnknown,
		} {
			s1, r1 := Classify(category, level)
			s2, r2 := Classify(category, level)
			assert.Equal(t, s1, s2)
			assert.Equal(t, r1, r2)
		}
	}
}
