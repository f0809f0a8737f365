package schedule

const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

const (
	WorkloadGood     = "Good"
	WorkloadModerate = "Moderate"
	WorkloadHigh     = "High"
)

var energyBonus = map[string]int{
	LevelHigh:   10,
	LevelMedium: 7,
	LevelLow:    3,
}

func EnergyBonus(levels EnergyLevels, startHour int) int {
	switch TimeOfDayFor(startHour) {
	case Morning:
		return energyBonus[levels.Morning]
	case Afternoon:
		return energyBonus[levels.Afternoon]
	default:
		return energyBonus[levels.Evening]
	}
}

func EventBonus(prefs Preferences, priority, category string, startHour int) int {
	bonus := 0

	switch priority {
	case LevelHigh:
		bonus += 10
	case LevelMedium:
		bonus += 5
	}

	if category != "" && prefs.PrefersCategory(category) {
		bonus += 10
	}

	return bonus + EnergyBonus(prefs.EnergyLevels, startHour)
}

func TaskBonus(prefs Preferences, priority, urgency string, highPriorityTasks, startHour int) int {
	bonus := levelBonus(priority) + levelBonus(urgency)

	switch WorkloadBalance(highPriorityTasks) {
	case WorkloadGood:
		bonus += 10
	case WorkloadModerate:
		bonus += 5
	}

	return bonus + EnergyBonus(prefs.EnergyLevels, startHour)
}

func WorkloadBalance(highPriorityTasks int) string {
	switch {
	case highPriorityTasks <= 2:
		return WorkloadGood
	case highPriorityTasks <= 5:
		return WorkloadModerate
	default:
		return WorkloadHigh
	}
}

func levelBonus(level string) int {
	switch level {
	case LevelHigh:
		return 15
	case LevelMedium:
		return 10
	case LevelLow:
		return 5
	default:
		return 0
	}
}
