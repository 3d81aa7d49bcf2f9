package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/apper-api/internal/http/middleware"
	"github.com/nurpe/apper-api/internal/model"
	"github.com/nurpe/apper-api/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

func (h *Handler) calculate(c *gin.Context) {
	market, ok := model.ParseMarketCode(c.Param("market"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported market"})
		return
	}

	var req model.CalculationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	requestID := middleware.GetRequestID(c)
	if requestID == "" {
		requestID = c.GetHeader(middleware.RequestIDHeader)
	}

	resp, err := h.calculations.Calculate(c.Request.Context(), service.CalculateInput{
		Market:         string(market),
		Request:        req,
		AcceptLanguage: c.GetHeader("Accept-Language"),
		UserAgent:      c.GetHeader("User-Agent"),
		RequestID:      requestID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.recorder != nil {
		h.recorder.CalculationServed(string(market))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.calculations.Health(c.Request.Context()))
}

func (h *Handler) listCalculations(c *gin.Context) {
	h.respondCalculations(c, func() ([]model.Calculation, error) {
		return h.calculations.List(c.Request.Context())
	})
}

func (h *Handler) listCalculationsByMarket(c *gin.Context) {
	h.respondCalculations(c, func() ([]model.Calculation, error) {
		return h.calculations.ListByMarket(c.Request.Context(), c.Param("market"))
	})
}

func (h *Handler) listCalculationsByRequest(c *gin.Context) {
	h.respondCalculations(c, func() ([]model.Calculation, error) {
		return h.calculations.ListByRequestID(c.Request.Context(), c.Param("requestId"))
	})
}

func (h *Handler) respondCalculations(c *gin.Context, fetch func() ([]model.Calculation, error)) {
	calcs, err := fetch()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, calcs)
}

func (h *Handler) getCalculation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	calc, err := h.calculations.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (h *Handler) exportCalculations(c *gin.Context) {
	result, err := h.calculations.Export(c.Request.Context(), c.Query("market"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, xlsxContentType, result.FileName, result.Content)
}

func (h *Handler) calculationPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := h.calculations.QuotePDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, pdfContentType, result.FileName, result.Content)
}
