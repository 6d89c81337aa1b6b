package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/feedback"
)

type Rescheduler interface {
	RescheduleUnit(ctx context.Context, userID string, weekStart time.Time, unitID string, now time.Time) (*domain.LearningUnit, error)
}

type FeedbackService interface {
	CompleteUnit(ctx context.Context, userID, unitID string, actualMinutes int) (*domain.LearningUnit, error)
	MarkMissed(ctx context.Context, userID, unitID string) (*domain.LearningUnit, error)
	SubmitRating(ctx context.Context, userID, unitID string, in feedback.RatingInput) (*domain.Rating, error)
}

type completeRequest struct {
	ActualDurationMinutes *int `json:"actual_duration_minutes" binding:"required"`
}

type ratingRequest struct {
	Concentration     int `json:"concentration" binding:"required"`
	PerceivedDuration int `json:"perceived_duration" binding:"required"`
	Achievement       int `json:"achievement" binding:"required"`
}

type UnitHandler struct {
	rescheduler Rescheduler
	feedback    FeedbackService
	clock       clock
}

func NewUnitHandler(rescheduler Rescheduler, feedbackService FeedbackService, loc *time.Location) *UnitHandler {
	return &UnitHandler{
		rescheduler: rescheduler,
		feedback:    feedbackService,
		clock:       newClock(loc),
	}
}

func (h *UnitHandler) HandleReschedule(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	weekStart, ok := h.clock.week(c)
	if !ok {
		return
	}
	unitID := c.Param("unitID")

	slog.InfoContext(ctx, "handling reschedule request",
		slog.String("user_id", userID),
		slog.String("unit_id", unitID),
	)

	unit, err := h.rescheduler.RescheduleUnit(ctx, userID, weekStart, unitID, h.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUnitResponse(unit))
}

func (h *UnitHandler) HandleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.FullPath()),
		)
		respondBadRequest(c, err.Error())
		return
	}

	unit, err := h.feedback.CompleteUnit(ctx, userID, c.Param("unitID"), *req.ActualDurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUnitResponse(unit))
}

func (h *UnitHandler) HandleMiss(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	unit, err := h.feedback.MarkMissed(ctx, userID, c.Param("unitID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUnitResponse(unit))
}

func (h *UnitHandler) HandleRating(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.FullPath()),
		)
		respondBadRequest(c, err.Error())
		return
	}

	rating, err := h.feedback.SubmitRating(ctx, userID, c.Param("unitID"), feedback.RatingInput{
		Concentration:     domain.Level(req.Concentration),
		PerceivedDuration: domain.Level(req.PerceivedDuration),
		Achievement:       domain.Level(req.Achievement),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRatingResponse(rating))
}
