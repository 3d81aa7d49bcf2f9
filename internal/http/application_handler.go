package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/apper-api/internal/model"
)

type createApplicationRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description *string         `json:"description"`
	CodeStack   *model.CodeType `json:"codeStack" binding:"omitempty,enum"`
	DBType      *model.DBType   `json:"dbType" binding:"omitempty,enum"`
}

func (h *Handler) createApplication(c *gin.Context) {
	var req createApplicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	app, err := h.applications.Create(c.Request.Context(), &model.Application{
		Name:        req.Name,
		Description: req.Description,
		CodeStack:   req.CodeStack,
		DBType:      req.DBType,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *Handler) listApplications(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
