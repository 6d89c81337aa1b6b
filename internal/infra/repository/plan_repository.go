package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type planRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewPlanRepository(db *gorm.DB, loc *time.Location) domain.PlanRepository {
	return &planRepository{
		db:  db,
		loc: loc,
	}
}

func (r *planRepository) GetLatestPlan(ctx context.Context, userID string, weekStart time.Time) (*domain.LearningPlan, error) {
	var m planModel
	err := r.withUnits(conn(ctx, r.db)).
		Where("user_id = ? AND week_start = ?", userID, r.formatDate(weekStart)).
		Order("revision DESC").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return r.planToDomain(&m)
}

func (r *planRepository) GetPlan(ctx context.Context, planID string) (*domain.LearningPlan, error) {
	var m planModel
	if err := r.withUnits(conn(ctx, r.db)).Where("id = ?", planID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return r.planToDomain(&m)
}

// CreatePlan inserts the plan together with its units.
func (r *planRepository) CreatePlan(ctx context.Context, plan *domain.LearningPlan) error {
	m := planModel{
		ID:        plan.ID,
		UserID:    plan.UserID,
		WeekStart: r.formatDate(plan.WeekStart),
		WeekEnd:   r.formatDate(plan.WeekEnd),
		Revision:  plan.Revision,
		PlannedAt: plan.PlannedAt.UTC(),
		Units:     make([]unitModel, 0, len(plan.Units)),
	}
	for _, u := range plan.Units {
		m.Units = append(m.Units, unitFromDomain(u))
	}
	if err := conn(ctx, r.db).Omit("Units.Rating").Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: plan revision %d already exists", domain.ErrConflict, plan.Revision)
		}
		return err
	}
	return nil
}

func (r *planRepository) GetUnit(ctx context.Context, unitID string) (*domain.LearningUnit, error) {
	var m unitModel
	if err := conn(ctx, r.db).Preload("Rating").Where("id = ?", unitID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return r.unitToDomain(&m), nil
}

func (r *planRepository) UpdateUnit(ctx context.Context, unit *domain.LearningUnit) error {
	res := conn(ctx, r.db).
		Model(&unitModel{}).
		Where("id = ?", unit.ID).
		Updates(map[string]any{
			"start_at":                unit.Start.UTC(),
			"end_at":                  unit.End.UTC(),
			"status":                  unit.Status.String(),
			"actual_duration_minutes": unit.ActualDurationMinutes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *planRepository) ListRatedUnitsByTask(ctx context.Context, taskID string) ([]*domain.LearningUnit, error) {
	var models []unitModel
	err := conn(ctx, r.db).
		Select("learning_units.*").
		Joins("JOIN unit_ratings ON unit_ratings.unit_id = learning_units.id").
		Where("learning_units.task_id = ? AND learning_units.status = ?", taskID, domain.UnitStatusCompleted.String()).
		Preload("Rating").
		Order("learning_units.start_at, learning_units.id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	units := make([]*domain.LearningUnit, 0, len(models))
	for i := range models {
		units = append(units, r.unitToDomain(&models[i]))
	}
	return units, nil
}

func (r *planRepository) CreateRating(ctx context.Context, rating *domain.Rating) error {
	m := ratingModel{
		ID:                rating.ID,
		UnitID:            rating.UnitID,
		Concentration:     int(rating.Concentration),
		PerceivedDuration: int(rating.PerceivedDuration),
		Achievement:       int(rating.Achievement),
		CreatedAt:         rating.CreatedAt.UTC(),
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrRatingAlreadyExists
		}
		return err
	}
	return nil
}

func (r *planRepository) withUnits(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Units", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("start_at, id")
		}).
		Preload("Units.Rating")
}

func (r *planRepository) formatDate(t time.Time) string {
	return t.In(r.loc).Format(dateLayout)
}

func (r *planRepository) planToDomain(m *planModel) (*domain.LearningPlan, error) {
	weekStart, err := time.ParseInLocation(dateLayout, m.WeekStart, r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: week start %q", ErrInvalidPlanData, m.WeekStart)
	}
	weekEnd, err := time.ParseInLocation(dateLayout, m.WeekEnd, r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: week end %q", ErrInvalidPlanData, m.WeekEnd)
	}

	plan := &domain.LearningPlan{
		ID:        m.ID,
		UserID:    m.UserID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Revision:  m.Revision,
		Units:     make([]*domain.LearningUnit, 0, len(m.Units)),
		PlannedAt: m.PlannedAt.In(r.loc),
	}
	for i := range m.Units {
		plan.Units = append(plan.Units, r.unitToDomain(&m.Units[i]))
	}
	return plan, nil
}

func (r *planRepository) unitToDomain(m *unitModel) *domain.LearningUnit {
	u := &domain.LearningUnit{
		ID:                    m.ID,
		PlanID:                m.PlanID,
		TaskID:                m.TaskID,
		Start:                 m.StartAt.In(r.loc),
		End:                   m.EndAt.In(r.loc),
		Status:                domain.UnitStatus(m.Status),
		ActualDurationMinutes: m.ActualDurationMinutes,
	}
	if m.Rating != nil {
		u.Rating = &domain.Rating{
			ID:                m.Rating.ID,
			UnitID:            m.Rating.UnitID,
			Concentration:     domain.Level(m.Rating.Concentration),
			PerceivedDuration: domain.Level(m.Rating.PerceivedDuration),
			Achievement:       domain.Level(m.Rating.Achievement),
			CreatedAt:         m.Rating.CreatedAt.In(r.loc),
		}
	}
	return u
}

func unitFromDomain(u *domain.LearningUnit) unitModel {
	return unitModel{
		ID:                    u.ID,
		PlanID:                u.PlanID,
		TaskID:                u.TaskID,
		StartAt:               u.Start.UTC(),
		EndAt:                 u.End.UTC(),
		Status:                u.Status.String(),
		ActualDurationMinutes: u.ActualDurationMinutes,
	}
}

// isDuplicateKey covers drivers whose errors gorm cannot translate.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
