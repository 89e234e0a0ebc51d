package matchmaking

import (
	"math"

	"github.com/celera/directory/pkg/member"
)

const maxTenureGap = 15.0

// NumericSimilarity averages tenure and cohort affinity over whichever of the
// two both records carry. It is 0 when neither is available.
func NumericSimilarity(a, b member.Record) float64 {
	var sum float64
	var n int
	if a.ExperienceYears != nil && b.ExperienceYears != nil {
		diff := math.Abs(*a.ExperienceYears - *b.ExperienceYears)
		sum += 1 - math.Min(diff, maxTenureGap)/maxTenureGap
		n++
	}
	if a.Cohort != nil && b.Cohort != nil {
		sum += cohortAffinity(*a.Cohort - *b.Cohort)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func cohortAffinity(diff int) float64 {
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.7
	case 2:
		return 0.4
	default:
		return 0.1
	}
}
