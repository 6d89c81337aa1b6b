package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type CostProfileService interface {
	GetTaskCostProfile(ctx context.Context, userID, taskID string) ([]domain.CostEntry, error)
}

type CostProfileHandler struct {
	profiles CostProfileService
}

func NewCostProfileHandler(profiles CostProfileService) *CostProfileHandler {
	return &CostProfileHandler{
		profiles: profiles,
	}
}

func (h *CostProfileHandler) HandleGetCostProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID := c.Param("taskID")

	entries, err := h.profiles.GetTaskCostProfile(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, costProfileResponse{
		TaskID:  taskID,
		Entries: entries,
	})
}
