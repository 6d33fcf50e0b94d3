package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/grana-app/grana_backend/internal/middleware"
	"github.com/grana-app/grana_backend/internal/utils/moneyfmt"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// convertHandler handles one-off currency conversion requests.
type convertHandler struct {
	rates           portssvc.RateProviderSvc
	currencyService portssvc.CurrencySvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(rates portssvc.RateProviderSvc, cs portssvc.CurrencySvcFacade) *convertHandler {
	return &convertHandler{
		rates:           rates,
		currencyService: cs,
	}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, rates portssvc.RateProviderSvc, cs portssvc.CurrencySvcFacade) {
	h := newConvertHandler(rates, cs)
	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using the in-memory rate table. Unknown pairs fall back to the identity rate rather than failing.
// @Tags convert
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "From currency code" MinLength(3) MaxLength(3)
// @Param   to query string true "To currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security ApiKeyAuth
// @Router /convert [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	fromCode := strings.ToUpper(c.Query("from"))
	toCode := strings.ToUpper(c.Query("to"))
	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	rate := h.rates.GetRate(fromCode, toCode)
	converted := h.rates.Convert(amount, fromCode, toCode)

	// Formatting uses catalog metadata when the target currency is known.
	displayCurrency := domain.Currency{CurrencyCode: toCode, Symbol: toCode, Precision: 2}
	if curr, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), toCode); err == nil {
		displayCurrency = *curr
	} else {
		logger.Debug("Target currency not in catalog, formatting with code", slog.String("currency_code", toCode))
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:          amount,
		FromCurrency:    fromCode,
		ToCurrency:      toCode,
		Rate:            rate,
		ConvertedAmount: converted,
		Formatted:       moneyfmt.FormatWithCurrency(converted, displayCurrency),
		RatesStale:      h.rates.IsStale(),
	})
}
