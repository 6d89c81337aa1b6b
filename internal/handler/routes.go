package handler

import "github.com/gin-gonic/gin"

// Register mounts the planner API on group.
func Register(group *gin.RouterGroup, plans *PlanHandler, units *UnitHandler, profiles *CostProfileHandler) {
	group.POST("/plans/generate", plans.HandleGeneratePlan)
	group.GET("/plans", plans.HandleGetPlan)

	group.POST("/units/:unitID/reschedule", units.HandleReschedule)
	group.POST("/units/:unitID/complete", units.HandleComplete)
	group.POST("/units/:unitID/miss", units.HandleMiss)
	group.POST("/units/:unitID/rating", units.HandleRating)

	group.GET("/tasks/:taskID/cost-profile", profiles.HandleGetCostProfile)
}
