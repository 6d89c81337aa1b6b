package handler

import (
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type ratingResponse struct {
	ID                string    `json:"id"`
	UnitID            string    `json:"unit_id"`
	Concentration     int       `json:"concentration"`
	PerceivedDuration int       `json:"perceived_duration"`
	Achievement       int       `json:"achievement"`
	CreatedAt         time.Time `json:"created_at"`
}

type unitResponse struct {
	ID                    string          `json:"id"`
	PlanID                string          `json:"plan_id"`
	TaskID                string          `json:"task_id"`
	Start                 time.Time       `json:"start"`
	End                   time.Time       `json:"end"`
	DurationMinutes       int             `json:"duration_minutes"`
	Status                string          `json:"status"`
	ActualDurationMinutes *int            `json:"actual_duration_minutes,omitempty"`
	Rating                *ratingResponse `json:"rating,omitempty"`
}

type planResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	WeekStart string         `json:"week_start"`
	WeekEnd   string         `json:"week_end"`
	Revision  int            `json:"revision"`
	PlannedAt time.Time      `json:"planned_at"`
	Units     []unitResponse `json:"units"`
}

type costProfileResponse struct {
	TaskID  string             `json:"task_id"`
	Entries []domain.CostEntry `json:"entries"`
}

func newRatingResponse(r *domain.Rating) *ratingResponse {
	if r == nil {
		return nil
	}
	return &ratingResponse{
		ID:                r.ID,
		UnitID:            r.UnitID,
		Concentration:     int(r.Concentration),
		PerceivedDuration: int(r.PerceivedDuration),
		Achievement:       int(r.Achievement),
		CreatedAt:         r.CreatedAt,
	}
}

func newUnitResponse(u *domain.LearningUnit) unitResponse {
	return unitResponse{
		ID:                    u.ID,
		PlanID:                u.PlanID,
		TaskID:                u.TaskID,
		Start:                 u.Start,
		End:                   u.End,
		DurationMinutes:       int(u.Duration().Minutes()),
		Status:                u.Status.String(),
		ActualDurationMinutes: u.ActualDurationMinutes,
		Rating:                newRatingResponse(u.Rating),
	}
}

func newPlanResponse(p *domain.LearningPlan) planResponse {
	units := make([]unitResponse, 0, len(p.Units))
	for _, u := range p.Units {
		units = append(units, newUnitResponse(u))
	}
	return planResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		WeekStart: p.WeekStart.Format(time.DateOnly),
		WeekEnd:   p.WeekEnd.Format(time.DateOnly),
		Revision:  p.Revision,
		PlannedAt: p.PlannedAt,
		Units:     units,
	}
}
