package wellnessapp

import (
	"context"
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/wellness"
	"github.com/r3labs/diff"
	"log/slog"
	"time"
)

const defaultMood = 5

var ErrNoChanges = errors.New("nothing to update")

type Backend interface {
	CreateHealthRecord(ctx context.Context, rec backend.NewHealthRecord) (*backend.HealthRecord, error)
	LatestHealthRecord(ctx context.Context, userID int) (*backend.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, recordID int, changes diff.Changelog) (*backend.HealthRecord, error)
	Recommendations(ctx context.Context, req backend.RecommendationsRequest) (*backend.Recommendations, error)
}

// Profile is what the recommendation engine knows about the user besides the
// metrics.
type Profile struct {
	Age           *int   `json:"user_age,omitempty"`
	Gender        string `json:"user_gender,omitempty"`
	ActivityLevel string `json:"user_activity_level,omitempty"`
}

// Snapshot is a health record together with the score derived from it.
type Snapshot struct {
	RecordID   int                `json:"record_id,omitempty"`
	RecordDate string             `json:"record_date,omitempty"`
	Metrics    wellness.MetricSet `json:"metrics"`
	Score      wellness.Score     `json:"score"`
}

func snapshotOf(rec *backend.HealthRecord) Snapshot {
	m := rec.Metrics()
	return Snapshot{
		RecordID:   rec.ID,
		RecordDate: rec.RecordDate,
		Metrics:    m,
		Score:      wellness.Aggregate(m),
	}
}

type Service struct {
	logger  *slog.Logger
	backend Backend
}

func New(logger *slog.Logger, b Backend) *Service {
	return &Service{
		logger:  logger,
		backend: b,
	}
}

func (s *Service) Score(m wellness.MetricSet) wellness.Score {
	return wellness.Aggregate(m)
}

// Save stores the metrics of a day together with their wellness score.
func (s *Service) Save(ctx context.Context, userID int, m wellness.MetricSet, date time.Time) (Snapshot, error) {
	score := wellness.Aggregate(m)

	rec, err := s.backend.CreateHealthRecord(ctx, backend.NewHealthRecord{
		UserID:       userID,
		RecordDate:   date.Format(time.DateOnly),
		HealthFields: backend.HealthFieldsFrom(m, score.Percentage),
	})
	if err != nil {
		return Snapshot{}, err
	}

	s.logger.Info("health record saved",
		"user_id", userID,
		"record_id", rec.ID,
		"wellness_score", score.Percentage,
	)
	return snapshotOf(rec), nil
}

// Latest loads the most recent record of the user. Failures other than an
// expired session are logged and answered with an empty form.
func (s *Service) Latest(ctx context.Context, userID int) (Snapshot, error) {
	rec, err := s.backend.LatestHealthRecord(ctx, userID)
	if err != nil {
		if backend.IsUnauthorized(err) {
			return Snapshot{}, err
		}
		s.logger.Warn("failed to load latest health record", "user_id", userID, "err", err)

		m := wellness.MetricSet{MoodScore: defaultMood}
		return Snapshot{Metrics: m, Score: wellness.Aggregate(m)}, nil
	}
	return snapshotOf(rec), nil
}

// Update sends the fields that differ between before and after. The wellness
// score is recomputed and sent along when it changes.
func (s *Service) Update(ctx context.Context, recordID int, before, after wellness.MetricSet) (Snapshot, error) {
	old := backend.HealthFieldsFrom(before, wellness.Aggregate(before).Percentage)
	cur := backend.HealthFieldsFrom(after, wellness.Aggregate(after).Percentage)

	changes, err := diff.Diff(old, cur)
	if err != nil {
		return Snapshot{}, err
	}
	if len(changes) == 0 {
		return Snapshot{}, ErrNoChanges
	}

	rec, err := s.backend.UpdateHealthRecord(ctx, recordID, changes)
	if err != nil {
		return Snapshot{}, err
	}

	s.logger.Info("health record updated", "record_id", recordID, "fields", len(changes))
	return snapshotOf(rec), nil
}

func (s *Service) Recommendations(ctx context.Context, m wellness.MetricSet, p Profile) (*backend.Recommendations, error) {
	return s.backend.Recommendations(ctx, backend.RecommendationsRequest{
		BMI:               m.BMI,
		WaterIntake:       m.WaterIntakeGlasses,
		SleepHours:        m.SleepHours,
		Steps:             m.Steps,
		MoodScore:         m.MoodScore,
		WellnessScore:     wellness.Aggregate(m).Percentage,
		UserAge:           p.Age,
		UserGender:        p.Gender,
		UserActivityLevel: p.ActivityLevel,
	})
}
