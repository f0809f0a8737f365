package schedule

const (
	conflictPenalty = 20
	gapPenalty      = 10
	maxScore        = 100
)

// Slot is a candidate time slot as returned by the smart prioritization API.
type Slot struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	StartHour       int    `json:"start_hour"`
	EndHour         int    `json:"end_hour"`
	DurationHours   int    `json:"duration_hours,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Conflicts       int    `json:"conflicts"`
	GapViolations   int    `json:"gap_violations"`
	Score           int    `json:"score"`
	BaseScore       int    `json:"base_score,omitempty"`
	BonusPoints     int    `json:"bonus_points,omitempty"`
	FinalScore      int    `json:"final_score"`
	WorkloadBalance string `json:"workload_balance,omitempty"`
}

func BaseScore(conflicts, gapViolations int) int {
	return maxScore - conflictPenalty*conflicts - gapPenalty*gapViolations
}

// FinalScore caps base+bonus into [0, 100].
func FinalScore(base, bonus int) int {
	return min(maxScore, max(0, base+bonus))
}

// Complete fills in the final score of a slot that arrived without one.
// Slots that already carry a final score are returned untouched.
func Complete(s Slot, bonus int) Slot {
	if s.FinalScore != 0 {
		return s
	}

	base := s.BaseScore
	if base == 0 {
		base = s.Score
	}
	if base == 0 {
		base = BaseScore(s.Conflicts, s.GapViolations)
	}
	if s.BonusPoints == 0 {
		s.BonusPoints = bonus
	}

	s.BaseScore = base
	s.FinalScore = FinalScore(base, s.BonusPoints)
	return s
}
