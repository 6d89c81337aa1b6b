package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type constraintRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewConstraintRepository(db *gorm.DB, loc *time.Location) domain.ConstraintRepository {
	return &constraintRepository{
		db:  db,
		loc: loc,
	}
}

func (r *constraintRepository) GetPreferences(ctx context.Context, userID string) (*domain.LearningPreferences, error) {
	var m preferencesModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}

	bands := make([]domain.TimeBand, 0, len(m.PreferredTimeBands))
	for _, b := range m.PreferredTimeBands {
		bands = append(bands, domain.TimeBand(b))
	}
	weekdays := make([]int, 0, len(m.PreferredWeekdays))
	weekdays = append(weekdays, m.PreferredWeekdays...)

	return &domain.LearningPreferences{
		UserID:                  m.UserID,
		MinUnitMinutes:          m.MinUnitMinutes,
		MaxUnitMinutes:          m.MaxUnitMinutes,
		MaxDailyWorkloadMinutes: m.MaxDailyWorkloadMinutes,
		BreakMinutes:            m.BreakMinutes,
		DeadlineBufferDays:      m.DeadlineBufferDays,
		PreferredTimeBands:      bands,
		PreferredWeekdays:       weekdays,
	}, nil
}

// ListFreeTimes skips rows that fail validation so one bad entry cannot block planning.
func (r *constraintRepository) ListFreeTimes(ctx context.Context, userID string) ([]*domain.FreeTime, error) {
	var models []freeTimeModel
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.FreeTime, 0, len(models))
	for i := range models {
		ft, err := r.freeTimeToDomain(&models[i])
		if err != nil {
			slog.WarnContext(ctx, "skipping invalid free time",
				slog.String("free_time_id", models[i].ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, ft)
	}
	return out, nil
}

func (r *constraintRepository) freeTimeToDomain(m *freeTimeModel) (*domain.FreeTime, error) {
	ft := &domain.FreeTime{
		ID:        m.ID,
		UserID:    m.UserID,
		Recurring: m.Recurring,
		Weekday:   m.Weekday,
		StartTime: domain.TimeOfDay(m.StartMinute),
		EndTime:   domain.TimeOfDay(m.EndMinute),
	}
	if m.Date != nil {
		d, err := time.ParseInLocation(dateLayout, *m.Date, r.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", domain.ErrValidation, *m.Date)
		}
		ft.Date = &d
	}
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	return ft, nil
}
