package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/grana-app/grana_backend/internal/apperrors"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/grana-app/grana_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to category goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers routes related to category goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/progress", h.getProgress)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a category goal
// @Description Configures a monthly spending limit for one expense category, denominated in the user's display currency
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security ApiKeyAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("category", req.Category))
	logger.Info("Received request to create goal")

	createdGoal, err := h.goalService.CreateGoal(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", createdGoal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(createdGoal))
}

// listGoals godoc
// @Summary List category goals
// @Description Retrieves all goals configured by the user
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.GoalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve goals"
// @Security ApiKeyAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list goals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// getProgress godoc
// @Summary Evaluate goal progress
// @Description Evaluates every goal against the period's spend, converted into the display currency at current rates. Defaults to the current month.
// @Tags goals
// @Produce  json
// @Param   month query string false "Calendar month (YYYY-MM)"
// @Param   from query string false "Period start date (YYYY-MM-DD)"
// @Param   to query string false "Period end date (YYYY-MM-DD)"
// @Success 200 {array} dto.GoalProgressResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to evaluate goals"
// @Security ApiKeyAuth
// @Router /goals/progress [get]
func (h *goalHandler) getProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, ok := parsePeriod(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: use month=YYYY-MM or from/to dates"})
		return
	}

	progress, err := h.goalService.Progress(c.Request.Context(), userID, period)
	if err != nil {
		logger.Error("Failed to evaluate goal progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalProgressResponse(progress))
}

// deleteGoal godoc
// @Summary Delete a category goal
// @Description Removes one of the user's goals
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 204 "Goal deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Goal belongs to another user"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Security ApiKeyAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("goal_id", goalID))

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Goal not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Attempted to delete another user's goal")
			c.JSON(http.StatusForbidden, gin.H{"error": "Goal belongs to another user"})
		} else {
			logger.Error("Failed to delete goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		}
		return
	}

	logger.Info("Goal deleted successfully")
	c.Status(http.StatusNoContent)
}
