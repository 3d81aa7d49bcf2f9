package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/apper-api/internal/service"
)

// CalculationRecorder is notified about every successful calculation.
type CalculationRecorder interface {
	CalculationServed(market string)
}

type Services struct {
	Customers    *service.CustomerService
	Vehicles     *service.VehicleService
	Applications *service.ApplicationService
	Calculations *service.CalculationService
}

type Handler struct {
	customers    *service.CustomerService
	vehicles     *service.VehicleService
	applications *service.ApplicationService
	calculations *service.CalculationService
	recorder     CalculationRecorder
	log          zerolog.Logger
}

func NewHandler(svc Services, recorder CalculationRecorder, log zerolog.Logger) *Handler {
	return &Handler{
		customers:    svc.Customers,
		vehicles:     svc.Vehicles,
		applications: svc.Applications,
		calculations: svc.Calculations,
		recorder:     recorder,
		log:          log,
	}
}

// Register mounts the v1 API. authMiddleware guards every mutating route.
func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	v1 := router.Group("/v1")
	write := v1.Group("/")
	write.Use(authMiddleware)

	v1.GET("/customers", h.listCustomers)
	v1.GET("/customers/:id", h.getCustomer)
	v1.GET("/customers/:id/addresses", h.listCustomerAddresses)
	v1.GET("/customers/:id/contracts", h.listCustomerContracts)
	write.POST("/customers", h.createCustomer)

	v1.GET("/addresses", h.listAddresses)
	v1.GET("/addresses/:id", h.getAddress)
	write.POST("/addresses", h.createAddress)

	v1.GET("/contracts", h.listContracts)
	v1.GET("/contracts/:id", h.getContract)
	write.POST("/contracts", h.createContract)

	v1.GET("/vehicles", h.listVehicles)
	v1.GET("/vehicles/:id", h.getVehicle)
	v1.GET("/vehicles/fin/:fin", h.listVehiclesByFIN)
	v1.GET("/vehicles/baumuster/:baumuster", h.listVehiclesByBaumuster)
	v1.GET("/vehicles/condition/:condition", h.listVehiclesByCondition)
	v1.GET("/vehicles/brand/:brand", h.listVehiclesByBrand)
	write.POST("/vehicles", h.createVehicle)
	write.PUT("/vehicles/:id", h.updateVehicle)
	write.DELETE("/vehicles/:id", h.deleteVehicle)

	v1.GET("/applications", h.listApplications)
	write.POST("/applications", h.createApplication)

	v1.GET("/health", h.health)
	write.POST("/:market/calculations", h.calculate)
	v1.GET("/calculations", h.listCalculations)
	v1.GET("/calculations/export", h.exportCalculations)
	v1.GET("/calculations/market/:market", h.listCalculationsByMarket)
	v1.GET("/calculations/request/:requestId", h.listCalculationsByRequest)
	v1.GET("/calculations/:id", h.getCalculation)
	v1.GET("/calculations/:id/pdf", h.calculationPDF)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func attachment(c *gin.Context, contentType, fileName string, content []byte) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, contentType, content)
}
