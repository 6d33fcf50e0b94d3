package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/grana-app/grana_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for period summaries.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingSvcFacade, us portssvc.UserSvcFacade) *reportHandler {
	return &reportHandler{
		reportingService: rs,
		userService:      us,
	}
}

// registerReportRoutes registers routes related to reporting.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, us portssvc.UserSvcFacade) {
	h := newReportHandler(rs, us)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// parsePeriod reads the period from query parameters. A month=YYYY-MM value
// wins over from/to; absent everything, the current calendar month is used.
func parsePeriod(c *gin.Context) (domain.Period, bool) {
	if month := c.Query("month"); month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return domain.Period{}, false
		}
		return domain.MonthPeriod(t.Year(), t.Month()), true
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return domain.Period{}, false
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil || to.Before(from) {
			return domain.Period{}, false
		}
		return domain.NewPeriod(from, to), true
	}

	now := time.Now().UTC()
	return domain.MonthPeriod(now.Year(), now.Month()), true
}

// getSummary godoc
// @Summary Get a period summary report
// @Description Aggregates the user's transactions for a period into totals and a per-category expense breakdown, converted into the display currency. Defaults to the current month.
// @Tags reports
// @Produce  json
// @Param   month query string false "Calendar month (YYYY-MM)"
// @Param   from query string false "Period start date (YYYY-MM-DD)"
// @Param   to query string false "Period end date (YYYY-MM-DD)"
// @Param   compare query bool false "Include previous period and percentage deltas"
// @Success 200 {object} dto.SummaryResponse
// @Success 200 {object} dto.ComparisonResponse "When compare=true"
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security ApiKeyAuth
// @Router /reports/summary [get]
func (h *reportHandler) getSummary(c *gin.Context) {
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

	logger = logger.With(slog.String("user_id", userID))
	displayCurrency := h.userService.DisplayCurrency(c.Request.Context(), userID)

	if c.Query("compare") == "true" {
		cmp, err := h.reportingService.SummaryWithComparison(c.Request.Context(), userID, period)
		if err != nil {
			logger.Error("Failed to compute summary comparison", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}
		c.JSON(http.StatusOK, dto.ToComparisonResponse(cmp, displayCurrency))
		return
	}

	result, err := h.reportingService.Summary(c.Request.Context(), userID, period)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(result, displayCurrency))
}
