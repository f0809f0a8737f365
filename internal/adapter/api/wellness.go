package api

import (
	"errors"
	wellnessapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/wellness"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/wellness"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"time"
)

func (s *Server) MountWellness() {
	routes := s.handler.Group("/wellness", s.SessionRequired)

	routes.POST("/score", s.ScoreMetrics)
	routes.POST("/records", s.SaveHealthRecord)
	routes.GET("/records/latest", s.LatestHealthRecord)
	routes.PUT("/records/:record_id", s.UpdateHealthRecord)
	routes.POST("/recommendations", s.Recommendations)
}

// MetricsRequest is the health form. BMI is computed from weight and height
// when it is not given directly.
type MetricsRequest struct {
	BMI         *float64 `json:"bmi" validate:"omitempty,gte=0,lte=100"`
	WeightKg    float64  `json:"weight_kg" validate:"gte=0,lte=500"`
	HeightCm    float64  `json:"height_cm" validate:"gte=0,lte=300"`
	WaterIntake int      `json:"water_intake" validate:"gte=0,lte=50"`
	SleepHours  float64  `json:"sleep_hours" validate:"gte=0,lte=24"`
	Steps       int      `json:"steps" validate:"gte=0"`
	MoodScore   int      `json:"mood_score" validate:"gte=0,lte=10"`
}

func (r MetricsRequest) MetricSet() wellness.MetricSet {
	bmi := r.BMI
	if bmi == nil {
		if v := wellness.ComputeBMI(r.WeightKg, r.HeightCm); v > 0 {
			bmi = &v
		}
	}
	return wellness.MetricSet{
		BMI:                bmi,
		WaterIntakeGlasses: r.WaterIntake,
		SleepHours:         r.SleepHours,
		Steps:              r.Steps,
		MoodScore:          r.MoodScore,
	}
}

type FactorView struct {
	wellness.Factor
	Variant string `json:"variant"`
}

type ScoreView struct {
	Percentage  int              `json:"percentage"`
	Grade       wellness.Grade   `json:"grade"`
	GradeText   string           `json:"grade_text"`
	Variant     string           `json:"variant"`
	Factors     []FactorView     `json:"factors"`
	BMI         *float64         `json:"bmi,omitempty"`
	BMICategory *wellness.Status `json:"bmi_category,omitempty"`
	SleepStatus *wellness.Status `json:"sleep_status,omitempty"`
	MoodLabel   string           `json:"mood_label,omitempty"`
}

func scoreView(m wellness.MetricSet, score wellness.Score) ScoreView {
	v := ScoreView{
		Percentage: score.Percentage,
		Grade:      score.Grade,
		GradeText:  score.Grade.Text(),
		Variant:    score.Grade.Variant(),
		Factors: lo.Map(score.Factors, func(f wellness.Factor, _ int) FactorView {
			return FactorView{Factor: f, Variant: wellness.FactorVariant(f)}
		}),
		BMI: m.BMI,
	}
	if m.BMI != nil && *m.BMI > 0 {
		v.BMICategory = lo.ToPtr(wellness.BMICategory(*m.BMI))
	}
	if m.SleepHours > 0 {
		v.SleepStatus = lo.ToPtr(wellness.SleepStatus(m.SleepHours))
	}
	if m.MoodScore > 0 {
		v.MoodLabel = wellness.MoodLabel(m.MoodScore)
	}
	return v
}

type RecordView struct {
	RecordID   int                `json:"record_id,omitempty"`
	RecordDate string             `json:"record_date,omitempty"`
	Metrics    wellness.MetricSet `json:"metrics"`
	Score      ScoreView          `json:"score"`
}

func recordView(snap wellnessapp.Snapshot) RecordView {
	return RecordView{
		RecordID:   snap.RecordID,
		RecordDate: snap.RecordDate,
		Metrics:    snap.Metrics,
		Score:      scoreView(snap.Metrics, snap.Score),
	}
}

func (s *Server) ScoreMetrics(c echo.Context) error {
	var req MetricsRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "Invalid health data")
	}

	m := req.MetricSet()
	return c.JSON(http.StatusOK, scoreView(m, s.wellnessService.Score(m)))
}

type SaveRecordRequest struct {
	MetricsRequest
	RecordDate string `json:"record_date" validate:"omitempty,datetime=2006-01-02"`
}

func (s *Server) SaveHealthRecord(c echo.Context) error {
	var req SaveRecordRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "Invalid health data")
	}

	date := s.today()
	if req.RecordDate != "" {
		date, _ = time.ParseInLocation(form.DateLayout, req.RecordDate, s.location)
	}

	snap, err := s.wellnessService.Save(c.Request().Context(), currentUser(c).ID, req.MetricSet(), date)
	if err != nil {
		return s.fail(c, err, "Failed to save health data")
	}
	return c.JSON(http.StatusCreated, recordView(snap))
}

func (s *Server) LatestHealthRecord(c echo.Context) error {
	snap, err := s.wellnessService.Latest(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return s.fail(c, err, "Failed to load health data")
	}
	return c.JSON(http.StatusOK, recordView(snap))
}

// UpdateRecordRequest carries the record as it was loaded and as it was
// edited, so only the edited fields are sent on.
type UpdateRecordRequest struct {
	Before MetricsRequest `json:"before"`
	After  MetricsRequest `json:"after"`
}

func (s *Server) UpdateHealthRecord(c echo.Context) error {
	recordID, err := intParam(c, "record_id")
	if err != nil {
		return s.fail(c, err, "")
	}

	var req UpdateRecordRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "Invalid health data")
	}

	snap, err := s.wellnessService.Update(c.Request().Context(), recordID, req.Before.MetricSet(), req.After.MetricSet())
	if err != nil {
		if errors.Is(err, wellnessapp.ErrNoChanges) {
			return JsonError(c, http.StatusBadRequest, "Nothing to update")
		}
		return s.fail(c, err, "Failed to update health data")
	}
	return c.JSON(http.StatusOK, recordView(snap))
}

type RecommendationsRequest struct {
	MetricsRequest
	UserAge           *int   `json:"user_age" validate:"omitempty,min=1,max=120"`
	UserGender        string `json:"user_gender" validate:"omitempty,oneof=male female other"`
	UserActivityLevel string `json:"user_activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
}

func (s *Server) Recommendations(c echo.Context) error {
	var req RecommendationsRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "Invalid health data")
	}

	out, err := s.wellnessService.Recommendations(c.Request().Context(), req.MetricSet(), wellnessapp.Profile{
		Age:           req.UserAge,
		Gender:        req.UserGender,
		ActivityLevel: req.UserActivityLevel,
	})
	if err != nil {
		return s.fail(c, err, "Failed to generate AI recommendations. Please try again.")
	}
	return c.JSON(http.StatusOK, out)
}
