package wellness

import (
	"math"
)

type Status struct {
	Text    string `json:"text"`
	Variant string `json:"variant"`
}

// ComputeBMI returns the body mass index rounded to one decimal, or 0 when
// either measurement is missing.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*10) / 10
}

func BMICategory(bmi float64) Status {
	switch {
	case bmi <= 0:
		return Status{}
	case bmi < 18.5:
		return Status{Text: "Underweight", Variant: "warning"}
	case bmi < 25:
		return Status{Text: "Normal", Variant: "success"}
	case bmi < 30:
		return Status{Text: "Overweight", Variant: "warning"}
	default:
		return Status{Text: "Obese", Variant: "danger"}
	}
}

func SleepStatus(hours float64) Status {
	switch {
	case hours >= 7 && hours <= 9:
		return Status{Text: "Optimal", Variant: "success"}
	case hours >= 6 && hours <= 10:
		return Status{Text: "Good", Variant: "info"}
	default:
		return Status{Text: "Needs Improvement", Variant: "warning"}
	}
}

func MoodLabel(score int) string {
	switch {
	case score >= 8:
		return "great"
	case score >= 6:
		return "good"
	case score >= 4:
		return "okay"
	case score >= 2:
		return "low"
	default:
		return "bad"
	}
}

func FactorVariant(f Factor) string {
	if f.Max <= 0 {
		return "warning"
	}
	ratio := float64(f.Score) / float64(f.Max)
	switch {
	case ratio >= 0.8:
		return "success"
	case ratio >= 0.6:
		return "info"
	default:
		return "warning"
	}
}
