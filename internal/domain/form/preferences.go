package form

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/samber/lo"
	"strings"
	"time"
)

type PreferencesForm struct {
	WorkingHoursStart   string                `json:"working_hours_start" validate:"required,clock"`
	WorkingHoursEnd     string                `json:"working_hours_end" validate:"required,clock"`
	PreferredBreakTimes []string              `json:"preferred_break_times" validate:"dive,clock"`
	MinGapBetweenEvents int                   `json:"min_gap_between_events" validate:"min=0"`
	PreferredCategories []string              `json:"preferred_categories"`
	EnergyLevels        schedule.EnergyLevels `json:"energy_levels"`
}

var preferencesMessages = map[string]string{
	"working_hours_start.required": "Please select working hours start",
	"working_hours_start.clock":    "Please select a valid time",
	"working_hours_end.required":   "Please select working hours end",
	"working_hours_end.clock":      "Please select a valid time",
	"preferred_break_times.clock":  "Please select a valid break time",
	"min_gap_between_events.min":   "Minimum gap cannot be negative",
}

var energyLevels = []string{schedule.LevelHigh, schedule.LevelMedium, schedule.LevelLow}

func PreferencesFormFrom(p schedule.Preferences) PreferencesForm {
	return PreferencesForm(p)
}

func (f PreferencesForm) Preferences() schedule.Preferences {
	return schedule.Preferences(f.Normalize())
}

func (f PreferencesForm) Normalize() PreferencesForm {
	trim := func(s string, _ int) string { return strings.TrimSpace(s) }

	f.WorkingHoursStart = strings.TrimSpace(f.WorkingHoursStart)
	f.WorkingHoursEnd = strings.TrimSpace(f.WorkingHoursEnd)
	f.PreferredBreakTimes = lo.Uniq(lo.Without(lo.Map(f.PreferredBreakTimes, trim), ""))
	f.PreferredCategories = lo.Uniq(lo.Without(lo.Map(f.PreferredCategories, trim), ""))
	return f
}

func (f PreferencesForm) Validate() error {
	f = f.Normalize()
	errs := check(f, preferencesMessages)

	if !errs.Has("working_hours_start") && !errs.Has("working_hours_end") {
		start, _ := time.Parse(ClockLayout, f.WorkingHoursStart)
		end, _ := time.Parse(ClockLayout, f.WorkingHoursEnd)
		if !end.After(start) {
			errs.Add("working_hours_end", "Working hours must end after they start")
		}
	}

	levels := map[string]string{
		"energy_levels.morning":   f.EnergyLevels.Morning,
		"energy_levels.afternoon": f.EnergyLevels.Afternoon,
		"energy_levels.evening":   f.EnergyLevels.Evening,
	}
	for field, level := range levels {
		if !lo.Contains(energyLevels, level) {
			errs.Add(field, "Please select high, medium or low")
		}
	}

	return errs.Err()
}
