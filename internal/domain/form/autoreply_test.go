package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoReplySettings_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		replies   int
		delay     int
		wantReply int
		wantDelay int
	}{
		{"in range", 50, 15, 50, 15},
		{"zero replies", 0, 0, 1, 0},
		{"too many replies", 5000, 0, 1000, 0},
		{"negative delay", 10, -3, 10, 0},
		{"delay over a day", 10, 2000, 10, 1440},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultAutoReplySettings()
			s.MaxRepliesPerDay = tc.replies
			s.DelayMinutes = tc.delay

			got := s.Normalize()
			assert.Equal(t, tc.wantReply, got.MaxRepliesPerDay)
			assert.Equal(t, tc.wantDelay, got.DelayMinutes)
		})
	}
}

func TestAutoReplySettings_Exclusions(t *testing.T) {
	s := DefaultAutoReplySettings().
		AddExcludeContact(" spam@example.com ").
		AddExcludeContact("spam@example.com").
		AddExcludeContact("   ").
		AddExcludeDomain("marketing.com")

	assert.Equal(t, []string{"spam@example.com"}, s.ExcludeContacts)
	assert.Equal(t, []string{"marketing.com"}, s.ExcludeDomains)

	s = s.RemoveExcludeContact("spam@example.com").RemoveExcludeDomain("marketing.com")
	assert.Empty(t, s.ExcludeContacts)
	assert.Empty(t, s.ExcludeDomains)

	s.ExcludeDomains = []string{" a.com", "a.com", ""}
	assert.Equal(t, []string{"a.com"}, s.Normalize().ExcludeDomains)
}
