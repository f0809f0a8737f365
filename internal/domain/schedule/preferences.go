package schedule

import (
	"github.com/samber/lo"
	"strings"
)

type EnergyLevels struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// Preferences are the scheduling preferences in the shape the API reads them.
type Preferences struct {
	WorkingHoursStart   string       `json:"working_hours_start"`
	WorkingHoursEnd     string       `json:"working_hours_end"`
	PreferredBreakTimes []string     `json:"preferred_break_times"`
	MinGapBetweenEvents int          `json:"min_gap_between_events"`
	PreferredCategories []string     `json:"preferred_categories"`
	EnergyLevels        EnergyLevels `json:"energy_levels"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "18:00",
		PreferredBreakTimes: []string{"12:00", "15:00"},
		MinGapBetweenEvents: 15,
		PreferredCategories: []string{"work", "meeting"},
		EnergyLevels: EnergyLevels{
			Morning:   LevelHigh,
			Afternoon: LevelMedium,
			Evening:   LevelLow,
		},
	}
}

func (p Preferences) PrefersCategory(category string) bool {
	return lo.Contains(p.PreferredCategories, category)
}

// PreferencesUpdate is the flat shape the API accepts on write. List fields
// travel as comma separated strings.
type PreferencesUpdate struct {
	WorkingHoursStart    string `json:"working_hours_start" diff:"working_hours_start"`
	WorkingHoursEnd      string `json:"working_hours_end" diff:"working_hours_end"`
	PreferredBreakTimes  string `json:"preferred_break_times" diff:"preferred_break_times"`
	MinGapBetweenEvents  int    `json:"min_gap_between_events" diff:"min_gap_between_events"`
	PreferredCategories  string `json:"preferred_categories" diff:"preferred_categories"`
	MorningEnergyLevel   string `json:"morning_energy_level" diff:"morning_energy_level"`
	AfternoonEnergyLevel string `json:"afternoon_energy_level" diff:"afternoon_energy_level"`
	EveningEnergyLevel   string `json:"evening_energy_level" diff:"evening_energy_level"`
}

func (p Preferences) Update() PreferencesUpdate {
	return PreferencesUpdate{
		WorkingHoursStart:    p.WorkingHoursStart,
		WorkingHoursEnd:      p.WorkingHoursEnd,
		PreferredBreakTimes:  strings.Join(p.PreferredBreakTimes, ","),
		MinGapBetweenEvents:  p.MinGapBetweenEvents,
		PreferredCategories:  strings.Join(p.PreferredCategories, ","),
		MorningEnergyLevel:   p.EnergyLevels.Morning,
		AfternoonEnergyLevel: p.EnergyLevels.Afternoon,
		EveningEnergyLevel:   p.EnergyLevels.Evening,
	}
}
