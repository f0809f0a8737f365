package form

import (
	"github.com/samber/lo"
	"strings"
)

const (
	MinRepliesPerDay = 1
	MaxRepliesPerDay = 1000
	MaxDelayMinutes  = 1440
)

type AutoReplySettings struct {
	Enabled             bool     `json:"enabled"`
	SendToAll           bool     `json:"send_to_all"`
	ExcludeContacts     []string `json:"exclude_contacts"`
	BusinessHoursOnly   bool     `json:"business_hours_only"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Timezone            string   `json:"timezone"`
	DelayMinutes        int      `json:"delay_minutes"`
	DefaultMessage      string   `json:"default_message"`
	IncludeSignature    bool     `json:"include_signature"`
	IncludeOutOfOffice  bool     `json:"include_out_of_office"`
	OutOfOfficeMessage  string   `json:"out_of_office_message"`
	MaxRepliesPerDay    int      `json:"max_replies_per_day"`
	ExcludeDomains      []string `json:"exclude_domains"`
	LearningEnabled     bool     `json:"learning_enabled"`
	SmartCategorization bool     `json:"smart_categorization"`
}

func DefaultAutoReplySettings() AutoReplySettings {
	return AutoReplySettings{
		ExcludeContacts:     []string{},
		BusinessHoursOnly:   true,
		StartTime:           "09:00",
		EndTime:             "17:00",
		Timezone:            "UTC",
		IncludeSignature:    true,
		MaxRepliesPerDay:    50,
		ExcludeDomains:      []string{},
		LearningEnabled:     true,
		SmartCategorization: true,
	}
}

// Normalize clamps the numeric limits and cleans the exclusion lists.
func (s AutoReplySettings) Normalize() AutoReplySettings {
	s.MaxRepliesPerDay = min(MaxRepliesPerDay, max(MinRepliesPerDay, s.MaxRepliesPerDay))
	s.DelayMinutes = min(MaxDelayMinutes, max(0, s.DelayMinutes))
	s.ExcludeContacts = cleanList(s.ExcludeContacts)
	s.ExcludeDomains = cleanList(s.ExcludeDomains)
	return s
}

func (s AutoReplySettings) AddExcludeContact(email string) AutoReplySettings {
	s.ExcludeContacts = addUnique(s.ExcludeContacts, email)
	return s
}

func (s AutoReplySettings) RemoveExcludeContact(email string) AutoReplySettings {
	s.ExcludeContacts = lo.Without(s.ExcludeContacts, email)
	return s
}

func (s AutoReplySettings) AddExcludeDomain(domain string) AutoReplySettings {
	s.ExcludeDomains = addUnique(s.ExcludeDomains, domain)
	return s
}

func (s AutoReplySettings) RemoveExcludeDomain(domain string) AutoReplySettings {
	s.ExcludeDomains = lo.Without(s.ExcludeDomains, domain)
	return s
}

func addUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || lo.Contains(list, value) {
		return list
	}
	return append(append([]string{}, list...), value)
}

func cleanList(list []string) []string {
	out := lo.Uniq(lo.Without(lo.Map(list, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), ""))
	if out == nil {
		return []string{}
	}
	return out
}
