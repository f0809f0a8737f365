package wellness

import (
	"math"
)

type Grade string

const (
	GradeExcellent        Grade = "Excellent"
	GradeVeryGood         Grade = "VeryGood"
	GradeGood             Grade = "Good"
	GradeFair             Grade = "Fair"
	GradeNeedsImprovement Grade = "NeedsImprovement"
)

func (g Grade) Text() string {
	switch g {
	case GradeVeryGood:
		return "Very Good"
	case GradeNeedsImprovement:
		return "Needs Improvement"
	default:
		return string(g)
	}
}

func (g Grade) Variant() string {
	switch g {
	case GradeExcellent:
		return "success"
	case GradeVeryGood:
		return "info"
	case GradeGood:
		return "primary"
	case GradeFair:
		return "warning"
	default:
		return "danger"
	}
}

// GradeFor picks the highest band whose lower bound the percentage reaches.
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeExcellent
	case percentage >= 80:
		return GradeVeryGood
	case percentage >= 70:
		return GradeGood
	case percentage >= 60:
		return GradeFair
	default:
		return GradeNeedsImprovement
	}
}

type Factor struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

type Score struct {
	Percentage int      `json:"percentage"`
	Grade      Grade    `json:"grade"`
	Factors    []Factor `json:"factors"`
}

var factorOrder = []struct {
	name string
	kind Kind
}{
	{"BMI", KindBMI},
	{"Hydration", KindWater},
	{"Sleep", KindSleep},
	{"Activity", KindSteps},
	{"Mood", KindMood},
}

// Aggregate sums the sub-scores of the provided metrics. Metrics that were not
// provided keep their slot in Factors with a zero score but stay out of the
// percentage base.
func Aggregate(m MetricSet) Score {
	var total, maxScore int
	factors := make([]Factor, 0, len(factorOrder))

	for _, f := range factorOrder {
		score, max, ok := Normalize(f.kind, m.Value(f.kind))
		if ok {
			total += score
			maxScore += max
		}
		factors = append(factors, Factor{
			Name:  f.name,
			Kind:  f.kind,
			Score: score,
			Max:   max,
		})
	}

	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(100 * float64(total) / float64(maxScore)))
	}

	return Score{
		Percentage: percentage,
		Grade:      GradeFor(percentage),
		Factors:    factors,
	}
}
