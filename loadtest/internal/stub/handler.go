package stub

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
)

type Handler struct {
	storage *RequestStorage
}

func NewHandler(storage *RequestStorage) *Handler {
	return &Handler{storage: storage}
}

// Register mounts the stub endpoints on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/optimize", h.HandleOptimize)
	r.POST("/reset", h.HandleReset)
	r.POST("/failures", h.HandleFailure)
	r.GET("/requests", h.HandleGetRequests)
}

// POST /optimize?run_id=...
func (h *Handler) HandleOptimize(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req optimizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.Add(runID, &req)

	if status := h.storage.NextFailure(runID); status != 0 {
		slog.Info("returning seeded failure",
			slog.String("run_id", runID),
			slog.Int("status", status),
		)
		c.JSON(status, gin.H{"error": "seeded failure"})
		return
	}

	resp := Place(&req)

	slog.Debug("optimized",
		slog.String("run_id", runID),
		slog.Int("task_count", len(req.Tasks)),
		slog.Int("fixed_block_count", len(req.FixedBlocks)),
		slog.Int("assignment_count", len(resp)),
	)

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.Query("run_id")
	if runID == "" {
		h.storage.ResetAll()
	} else {
		h.storage.Reset(runID)
	}

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

// POST /failures?run_id=...
func (h *Handler) HandleFailure(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req FailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.SetFailure(runID, req.Status, req.Count)

	c.Status(http.StatusNoContent)
}

// GET /requests?run_id=...
func (h *Handler) HandleGetRequests(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	requests := h.storage.List(runID)
	c.JSON(http.StatusOK, RequestsResponse{
		Requests: requests,
		Count:    len(requests),
	})
}
