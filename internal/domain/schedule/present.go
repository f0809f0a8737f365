package schedule

import (
	"fmt"
)

type Kind string

const (
	KindEvent Kind = "event"
	KindTask  Kind = "task"
)

const topPicks = 3

type Severity string

const (
	SeverityExcellent Severity = "Excellent"
	SeverityGood      Severity = "Good"
	SeverityFair      Severity = "Fair"
	SeverityPoor      Severity = "Poor"
)

func SeverityFor(score int) Severity {
	switch {
	case score >= 90:
		return SeverityExcellent
	case score >= 70:
		return SeverityGood
	case score >= 50:
		return SeverityFair
	default:
		return SeverityPoor
	}
}

// ScoreVariant is the badge color of a final score. It uses coarser bands
// than SeverityFor.
func ScoreVariant(score int) string {
	switch {
	case score >= 90:
		return "success"
	case score >= 70:
		return "warning"
	default:
		return "danger"
	}
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
)

func TimeOfDayFor(startHour int) TimeOfDay {
	switch {
	case startHour < 12:
		return Morning
	case startHour < 17:
		return Afternoon
	default:
		return Evening
	}
}

func (t TimeOfDay) Variant() string {
	switch t {
	case Morning:
		return "primary"
	case Afternoon:
		return "warning"
	default:
		return "success"
	}
}

type Card struct {
	Index       int       `json:"index"`
	Slot        Slot      `json:"slot"`
	TopPick     bool      `json:"top_pick"`
	Label       string    `json:"label"`
	Severity    Severity  `json:"severity"`
	Variant     string    `json:"variant"`
	TimeOfDay   TimeOfDay `json:"time_of_day"`
	TimeVariant string    `json:"time_of_day_variant"`
}

type Presentation struct {
	Cards        []Card `json:"cards"`
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`
}

func EmptyMessage(kind Kind) string {
	return fmt.Sprintf("No %s suggestions found. Try adjusting your criteria.", kind)
}

// Present turns ranked slots into cards. The order the ranker produced is
// kept as is; the first three cards are top picks.
func Present(kind Kind, slots []Slot) Presentation {
	if len(slots) == 0 {
		return Presentation{
			Cards:        []Card{},
			Empty:        true,
			EmptyMessage: EmptyMessage(kind),
		}
	}

	cards := make([]Card, 0, len(slots))
	for i, s := range slots {
		label := fmt.Sprintf("Option %d", i+1)
		if i < topPicks {
			label = "Top Pick"
		}

		tod := TimeOfDayFor(s.StartHour)
		cards = append(cards, Card{
			Index:       i,
			Slot:        s,
			TopPick:     i < topPicks,
			Label:       label,
			Severity:    SeverityFor(s.FinalScore),
			Variant:     ScoreVariant(s.FinalScore),
			TimeOfDay:   tod,
			TimeVariant: tod.Variant(),
		})
	}

	return Presentation{Cards: cards}
}
