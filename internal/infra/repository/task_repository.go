package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type taskRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewTaskRepository(db *gorm.DB, loc *time.Location) domain.TaskRepository {
	return &taskRepository{
		db:  db,
		loc: loc,
	}
}

func (r *taskRepository) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	var m taskModel
	if err := conn(ctx, r.db).Where("id = ?", taskID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *taskRepository) GetModule(ctx context.Context, moduleID string) (*domain.Module, error) {
	var m moduleModel
	if err := conn(ctx, r.db).Where("id = ?", moduleID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, err
	}
	return &domain.Module{
		ID:     m.ID,
		UserID: m.UserID,
		Title:  m.Title,
	}, nil
}

func (r *taskRepository) ListTasksByOwner(ctx context.Context, userID string) ([]*domain.Task, error) {
	var models []taskModel
	err := conn(ctx, r.db).
		Joins("JOIN modules ON modules.id = tasks.module_id").
		Where("modules.user_id = ?", userID).
		Order("tasks.created_at, tasks.id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(models), nil
}

func (r *taskRepository) ListTasksByModule(ctx context.Context, moduleID string) ([]*domain.Task, error) {
	var models []taskModel
	err := conn(ctx, r.db).
		Where("module_id = ?", moduleID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(models), nil
}

func (r *taskRepository) toDomainList(models []taskModel) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(models))
	for i := range models {
		tasks = append(tasks, r.toDomain(&models[i]))
	}
	return tasks
}

func (r *taskRepository) toDomain(m *taskModel) *domain.Task {
	return &domain.Task{
		ID:                    m.ID,
		ModuleID:              m.ModuleID,
		Title:                 m.Title,
		WeeklyDurationMinutes: m.WeeklyDurationMinutes,
		Category:              domain.Category(m.Category),
		StartDate:             inLocation(m.StartDate, r.loc),
		DueDate:               inLocation(m.DueDate, r.loc),
		ExamDate:              inLocation(m.ExamDate, r.loc),
	}
}

func inLocation(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}
