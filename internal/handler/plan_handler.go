package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type PlanService interface {
	GeneratePlan(ctx context.Context, userID string, weekStart, now time.Time) (*domain.LearningPlan, error)
	GetCurrentPlan(ctx context.Context, userID string, weekStart time.Time) (*domain.LearningPlan, error)
}

type PlanHandler struct {
	plans PlanService
	clock clock
}

func NewPlanHandler(plans PlanService, loc *time.Location) *PlanHandler {
	return &PlanHandler{
		plans: plans,
		clock: newClock(loc),
	}
}

func (h *PlanHandler) HandleGeneratePlan(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	weekStart, ok := h.clock.week(c)
	if !ok {
		return
	}

	slog.InfoContext(ctx, "handling plan generation request",
		slog.String("user_id", userID),
		slog.String("week_start", weekStart.Format(time.DateOnly)),
	)

	plan, err := h.plans.GeneratePlan(ctx, userID, weekStart, h.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPlanResponse(plan))
}

func (h *PlanHandler) HandleGetPlan(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	weekStart, ok := h.clock.week(c)
	if !ok {
		return
	}

	plan, err := h.plans.GetCurrentPlan(ctx, userID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlanResponse(plan))
}
