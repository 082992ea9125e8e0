// Package classify maps maturity metadata to a public-facing status and
// recommendation. Classification is a pure, total function: every
// (category, level) pair yields a result, never an error.
package classify

import "github.com/amponce/va-design-system-monitor/internal/types"

// Fixed recommendation sentence per status.
const (
	recommendationRecommended  = "Recommended for use. This component follows current best practices."
	recommendationStable       = "Stable. Deployed and actively used in production."
	recommendationExperimental = "Experimental. This component is a candidate and its API may change."
	recommendationAvailable    = "Available, but has known issues. Review guidance before use."
	recommendationCaution      = "Use with caution. Review the maturity guidance before implementing."
	recommendationUnknown      = "Unknown maturity. Verify the component's status before use."
)

// Classify derives the status and recommendation for a maturity
// category and level. A caution category dominates regardless of level.
func Classify(category types.MaturityCategory, level types.MaturityLevel) (types.Status, string) {
	if category == types.CategoryCaution {
		return types.StatusUseWithCaution, recommendationCaution
	}
	switch level {
	case types.LevelBestPractice:
		return types.StatusRecommended, recommendationRecommended
	case types.LevelDeployed:
		return types.StatusStable, recommendationStable
	case types.LevelCandidate:
		return types.StatusExperimental, recommendationExperimental
	case types.LevelAvailable:
		return types.StatusAvailableWithIssues, recommendationAvailable
	default:
		return types.StatusUnknown, recommendationUnknown
	}
}
