package wellness

// Kind identifies one of the raw health metrics captured on the dashboard.
type Kind string

const (
	KindBMI   Kind = "bmi"
	KindWater Kind = "water_intake"
	KindSleep Kind = "sleep_hours"
	KindSteps Kind = "steps"
	KindMood  Kind = "mood_score"
)

const (
	MaxBMI   = 25
	MaxWater = 20
	MaxSleep = 25
	MaxSteps = 20
	MaxMood  = 10
)

// MetricSet is the raw input of the health dashboard. A nil BMI and any
// non-positive value mean "not provided".
type MetricSet struct {
	BMI                *float64 `json:"bmi"`
	WaterIntakeGlasses int      `json:"water_intake"`
	SleepHours         float64  `json:"sleep_hours"`
	Steps              int      `json:"steps"`
	MoodScore          int      `json:"mood_score"`
}

func (m MetricSet) Value(k Kind) float64 {
	switch k {
	case KindBMI:
		if m.BMI == nil {
			return 0
		}
		return *m.BMI
	case KindWater:
		return float64(m.WaterIntakeGlasses)
	case KindSleep:
		return m.SleepHours
	case KindSteps:
		return float64(m.Steps)
	case KindMood:
		return float64(m.MoodScore)
	default:
		return 0
	}
}

func Max(k Kind) int {
	switch k {
	case KindBMI:
		return MaxBMI
	case KindWater:
		return MaxWater
	case KindSleep:
		return MaxSleep
	case KindSteps:
		return MaxSteps
	case KindMood:
		return MaxMood
	default:
		return 0
	}
}

// Normalize maps a raw metric value onto its bounded sub-score. ok is false
// when the value is not positive; such a metric must not count towards the
// aggregate at all.
func Normalize(k Kind, v float64) (score int, max int, ok bool) {
	max = Max(k)
	if v <= 0 || max == 0 {
		return 0, max, false
	}

	switch k {
	case KindBMI:
		score = bmiScore(v)
	case KindWater:
		score = waterScore(v)
	case KindSleep:
		score = sleepScore(v)
	case KindSteps:
		score = stepsScore(v)
	case KindMood:
		score = int(v)
	}
	return score, max, true
}

func bmiScore(bmi float64) int {
	switch {
	case bmi >= 18.5 && bmi < 25:
		return 25
	case (bmi >= 17 && bmi < 18.5) || (bmi >= 25 && bmi < 30):
		return 15
	case (bmi >= 16 && bmi < 17) || (bmi >= 30 && bmi < 35):
		return 10
	default:
		return 5
	}
}

func waterScore(glasses float64) int {
	switch {
	case glasses >= 8:
		return 20
	case glasses >= 6:
		return 15
	case glasses >= 4:
		return 10
	default:
		return 5
	}
}

func sleepScore(hours float64) int {
	switch {
	case hours >= 7 && hours <= 9:
		return 25
	case hours >= 6 && hours <= 10:
		return 20
	case hours >= 5 && hours <= 11:
		return 15
	default:
		return 10
	}
}

func stepsScore(steps float64) int {
	switch {
	case steps >= 10000:
		return 20
	case steps >= 8000:
		return 18
	case steps >= 6000:
		return 15
	case steps >= 4000:
		return 10
	default:
		return 5
	}
}
