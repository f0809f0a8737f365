package backend

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/wellness"
	"strconv"
)

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (u User) OwnerID() string {
	return strconv.Itoa(u.ID)
}

// HealthFields are the editable columns of a health record.
type HealthFields struct {
	BMI           *float64 `json:"bmi" diff:"bmi"`
	WaterIntake   int      `json:"water_intake" diff:"water_intake"`
	SleepHours    float64  `json:"sleep_hours" diff:"sleep_hours"`
	Steps         int      `json:"steps" diff:"steps"`
	MoodScore     int      `json:"mood_score" diff:"mood_score"`
	WellnessScore int      `json:"wellness_score" diff:"wellness_score"`
}

func HealthFieldsFrom(m wellness.MetricSet, score int) HealthFields {
	return HealthFields{
		BMI:           m.BMI,
		WaterIntake:   m.WaterIntakeGlasses,
		SleepHours:    m.SleepHours,
		Steps:         m.Steps,
		MoodScore:     m.MoodScore,
		WellnessScore: score,
	}
}

func (f HealthFields) Metrics() wellness.MetricSet {
	return wellness.MetricSet{
		BMI:                f.BMI,
		WaterIntakeGlasses: f.WaterIntake,
		SleepHours:         f.SleepHours,
		Steps:              f.Steps,
		MoodScore:          f.MoodScore,
	}
}

type NewHealthRecord struct {
	UserID     int    `json:"user_id"`
	RecordDate string `json:"record_date"`
	HealthFields
}

type HealthRecord struct {
	ID         int    `json:"id"`
	UserID     int    `json:"user_id"`
	RecordDate string `json:"record_date"`
	HealthFields
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type RecommendationsRequest struct {
	BMI               *float64 `json:"bmi"`
	WaterIntake       int      `json:"water_intake"`
	SleepHours        float64  `json:"sleep_hours"`
	Steps             int      `json:"steps"`
	MoodScore         int      `json:"mood_score"`
	WellnessScore     int      `json:"wellness_score"`
	UserAge           *int     `json:"user_age,omitempty"`
	UserGender        string   `json:"user_gender,omitempty"`
	UserActivityLevel string   `json:"user_activity_level,omitempty"`
}

type Recommendation struct {
	Category         string   `json:"category"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	ActionItems      []string `json:"action_items"`
	ExpectedBenefits string   `json:"expected_benefits"`
	Difficulty       string   `json:"difficulty"`
}

type Recommendations struct {
	HealthAssessment string           `json:"health_assessment"`
	Recommendations  []Recommendation `json:"recommendations"`
	OverallPriority  string           `json:"overall_priority,omitempty"`
	NextSteps        string           `json:"next_steps"`
}

type recommendationsResponse struct {
	Success bool             `json:"success"`
	Data    *Recommendations `json:"data"`
	Error   string           `json:"error"`
}

type HealthReminder struct {
	ID           int    `json:"id,omitempty"`
	UserID       int    `json:"user_id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Time         string `json:"time"`
	ReminderDate string `json:"reminder_date"`
	Frequency    string `json:"frequency"`
	Notes        string `json:"notes,omitempty"`
	Active       bool   `json:"active"`
}

type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Repeat      string `json:"repeat"`
	Category    string `json:"category"`
	LinkedTask  string `json:"linked_task,omitempty"`
	Archived    bool   `json:"archived"`
}

type Task struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DueDate          string `json:"due_date"`
	Importance       int    `json:"importance"`
	Category         string `json:"category"`
	Tags             string `json:"tags"`
	EstimatedMinutes *int   `json:"estimated_minutes"`
	UrgencyScore     *int   `json:"urgency_score"`
	Completed        bool   `json:"completed"`
	Archived         bool   `json:"archived"`
}

type EventSuggestionQuery struct {
	EventDuration      int    `query:"event_duration" validate:"required,min=1"`
	PreferredDate      string `query:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	PreferredTimeStart string `query:"preferred_time_start" validate:"omitempty,clock"`
	PreferredTimeEnd   string `query:"preferred_time_end" validate:"omitempty,clock"`
	Priority           string `query:"priority" validate:"omitempty,oneof=low medium high"`
	Category           string `query:"category"`
}

type TaskSuggestionQuery struct {
	TaskDuration       int    `query:"task_duration" validate:"required,min=1"`
	TaskPriority       string `query:"task_priority" validate:"omitempty,oneof=low medium high"`
	TaskUrgency        string `query:"task_urgency" validate:"omitempty,oneof=low medium high"`
	PreferredDate      string `query:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	PreferredTimeStart string `query:"preferred_time_start" validate:"omitempty,clock"`
	PreferredTimeEnd   string `query:"preferred_time_end" validate:"omitempty,clock"`
}

type WorkloadAnalysis struct {
	TotalTasks        int `json:"total_tasks"`
	HighPriorityTasks int `json:"high_priority_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
	BusyHours         int `json:"busy_hours"`
	FreeHours         int `json:"free_hours"`
}

type Suggestions struct {
	Suggestions      []schedule.Slot   `json:"suggestions"`
	TotalSlotsFound  int               `json:"total_slots_found"`
	WorkloadAnalysis *WorkloadAnalysis `json:"workload_analysis,omitempty"`
}

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type UserTasks struct {
	TotalTasks        int               `json:"total_tasks"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
}
