package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListDeviceReports lists all device reports
// @Summary      List Device Reports
// @Tags         Device Reports
// @Produce      json
// @Success      200  {object}  []models.DeviceReport
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/devicereport [get]
func (api *API) ListDeviceReports(c *gin.Context) {
	items, err := api.meta.ListDeviceReports(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDeviceReport gets a device report by ID
// @Summary      Get DeviceReport
// @Tags         Device Reports
// @Produce      json
// @Param        id   path      string  true "DeviceReport ID"
// @Success      200  {object}  models.DeviceReport
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/devicereport/{id} [get]
func (api *API) GetDeviceReport(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceReportByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetDeviceReportByName gets a device report by name
// @Summary      Get DeviceReport By Name
// @Tags         Device Reports
// @Produce      json
// @Param        name  path     string  true "DeviceReport name"
// @Success      200  {object}  models.DeviceReport
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/devicereport/name/{name} [get]
func (api *API) GetDeviceReportByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceReportByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateDeviceReport registers a new device report
// @Summary      Add DeviceReport
// @Tags         Device Reports
// @Accept       json
// @Produce      json
// @Param        devicereport  body  models.AddDeviceReport  true "Add DeviceReport"
// @Success      201  {object}  models.DeviceReport
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/devicereport [post]
func (api *API) CreateDeviceReport(c *gin.Context) {
	var request models.AddDeviceReport
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddDeviceReport(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateDeviceReport overlays fields onto an existing device report
// @Summary      Update DeviceReport
// @Tags         Device Reports
// @Accept       json
// @Produce      json
// @Param        id path string true "DeviceReport ID"
// @Param        update  body  models.UpdateDeviceReport  true "Update DeviceReport"
// @Success      200  {object}  models.DeviceReport
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/devicereport/{id} [put]
func (api *API) UpdateDeviceReport(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateDeviceReport
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateDeviceReport(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteDeviceReport removes a device report by ID
// @Summary      Delete DeviceReport
// @Tags         Device Reports
// @Produce      json
// @Param        id path string true "DeviceReport ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/devicereport/{id} [delete]
func (api *API) DeleteDeviceReport(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceReportByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteDeviceReportByName removes a device report by name
// @Summary      Delete DeviceReport By Name
// @Tags         Device Reports
// @Produce      json
// @Param        name path string true "DeviceReport name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/devicereport/name/{name} [delete]
func (api *API) DeleteDeviceReportByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceReportByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
