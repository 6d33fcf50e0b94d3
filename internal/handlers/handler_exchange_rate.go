package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/grana-app/grana_backend/internal/apperrors"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/grana-app/grana_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	rates               portssvc.RateProviderSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, rates portssvc.RateProviderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		rates:               rates,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade, rates portssvc.RateProviderSvc) {
	h := newExchangeRateHandler(ers, rates)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.getExchangeRate)
		exchangeRates.GET("/status", h.getRateStatus)
		exchangeRates.POST("/refresh", h.refreshRates)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Stores a directional rate for a currency pair (admin operation)
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security ApiKeyAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("from_currency", req.FromCurrencyCode),
		slog.String("to_currency", req.ToCurrencyCode),
	)
	logger.Info("Received request to create exchange rate")

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("exchange_rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the latest stored rate for a directional currency pair
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "From currency code" MinLength(3) MaxLength(3)
// @Param   to query string true "To currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency codes"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security ApiKeyAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := strings.ToUpper(c.Query("from"))
	toCode := strings.ToUpper(c.Query("to"))

	logger = logger.With(slog.String("from_currency", fromCode), slog.String("to_currency", toCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getRateStatus godoc
// @Summary Get rate table freshness
// @Description Reports when the in-memory rate table was last refreshed and whether it is stale
// @Tags exchange-rates
// @Produce  json
// @Success 200 {object} dto.RateStatusResponse
// @Security ApiKeyAuth
// @Router /exchange-rates/status [get]
func (h *exchangeRateHandler) getRateStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RateStatusResponse{
		LastRefreshedAt: h.rates.LastRefreshed(),
		Stale:           h.rates.IsStale(),
	})
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Triggers a fetch from the external provider and replaces the rate table. Concurrent requests share one fetch.
// @Tags exchange-rates
// @Produce  json
// @Success 200 {object} dto.RateStatusResponse
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Security ApiKeyAuth
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.rates.Refresh(c.Request.Context()); err != nil {
		logger.Error("Manual rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Rate provider unavailable"})
		return
	}

	logger.Info("Rate table refreshed manually")
	c.JSON(http.StatusOK, dto.RateStatusResponse{
		LastRefreshedAt: h.rates.LastRefreshed(),
		Stale:           h.rates.IsStale(),
	})
}
