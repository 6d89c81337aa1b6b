package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type costProfileRepository struct {
	db *gorm.DB
}

func NewCostProfileRepository(db *gorm.DB) domain.CostProfileRepository {
	return &costProfileRepository{
		db: db,
	}
}

func (r *costProfileRepository) GetCostProfile(ctx context.Context, taskID string) (*domain.CostProfile, error) {
	var m costProfileModel
	if err := conn(ctx, r.db).Where("task_id = ?", taskID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCostProfileNotFound
		}
		return nil, err
	}
	return &domain.CostProfile{
		TaskID:      m.TaskID,
		Data:        []byte(m.Data),
		PenaltyData: []byte(m.PenaltyData),
		Stale:       m.Stale,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// SaveCostProfile upserts the profile by task id.
func (r *costProfileRepository) SaveCostProfile(ctx context.Context, profile *domain.CostProfile) error {
	data := profile.Data
	if len(data) == 0 {
		data = []byte("[]")
	}
	m := costProfileModel{
		TaskID:      profile.TaskID,
		Data:        data,
		PenaltyData: profile.PenaltyData,
		Stale:       profile.Stale,
	}
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
	if err != nil {
		return err
	}
	profile.UpdatedAt = m.UpdatedAt
	return nil
}
