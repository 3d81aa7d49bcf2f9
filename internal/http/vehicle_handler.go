package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/apper-api/internal/model"
)

// vehicleRequest serves both create and update. Absent fields stay nil.
type vehicleRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	model.VehicleAttributes
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req vehicleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Name == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	vehicle := &model.Vehicle{Name: *req.Name, VehicleAttributes: req.VehicleAttributes}
	created, err := h.vehicles.Create(c.Request.Context(), vehicle)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listVehicles(c *gin.Context) {
	h.respondVehicles(c, func() ([]model.Vehicle, error) {
		return h.vehicles.List(c.Request.Context())
	})
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) listVehiclesByFIN(c *gin.Context) {
	h.respondVehicles(c, func() ([]model.Vehicle, error) {
		return h.vehicles.ListByFIN(c.Request.Context(), c.Param("fin"))
	})
}

func (h *Handler) listVehiclesByBaumuster(c *gin.Context) {
	h.respondVehicles(c, func() ([]model.Vehicle, error) {
		return h.vehicles.ListByBaumuster(c.Request.Context(), c.Param("baumuster"))
	})
}

func (h *Handler) listVehiclesByCondition(c *gin.Context) {
	h.respondVehicles(c, func() ([]model.Vehicle, error) {
		return h.vehicles.ListByCondition(c.Request.Context(), c.Param("condition"))
	})
}

func (h *Handler) listVehiclesByBrand(c *gin.Context) {
	h.respondVehicles(c, func() ([]model.Vehicle, error) {
		return h.vehicles.ListByBrand(c.Request.Context(), c.Param("brand"))
	})
}

func (h *Handler) respondVehicles(c *gin.Context, fetch func() ([]model.Vehicle, error)) {
	vehicles, err := fetch()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req vehicleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicles.Update(c.Request.Context(), id, req.Name, req.VehicleAttributes)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
