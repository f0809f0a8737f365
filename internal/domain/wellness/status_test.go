package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBMI(t *testing.T) {
	assert.Equal(t, 22.9, ComputeBMI(70, 175))
	assert.Equal(t, 0.0, ComputeBMI(0, 175))
	assert.Equal(t, 0.0, ComputeBMI(70, 0))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17).Text)
	assert.Equal(t, "Normal", BMICategory(22.9).Text)
	assert.Equal(t, "Overweight", BMICategory(27).Text)
	assert.Equal(t, "Obese", BMICategory(31).Text)
	assert.Equal(t, Status{}, BMICategory(0))
}

func TestSleepStatus(t *testing.T) {
	assert.Equal(t, "success", SleepStatus(8).Variant)
	assert.Equal(t, "info", SleepStatus(6).Variant)
	assert.Equal(t, "warning", SleepStatus(4).Variant)
}

func TestMoodLabel(t *testing.T) {
	assert.Equal(t, "great", MoodLabel(9))
	assert.Equal(t, "good", MoodLabel(6))
	assert.Equal(t, "okay", MoodLabel(5))
	assert.Equal(t, "low", MoodLabel(2))
	assert.Equal(t, "bad", MoodLabel(1))
}

func TestFactorVariant(t *testing.T) {
	assert.Equal(t, "success", FactorVariant(Factor{Score: 20, Max: 20}))
	assert.Equal(t, "info", FactorVariant(Factor{Score: 15, Max: 25}))
	assert.Equal(t, "warning", FactorVariant(Factor{Score: 5, Max: 20}))
	assert.Equal(t, "warning", FactorVariant(Factor{}))
}
