package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListDeviceServices lists all device services
// @Summary      List Device Services
// @Tags         Device Services
// @Produce      json
// @Success      200  {object}  []models.DeviceService
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/deviceservice [get]
func (api *API) ListDeviceServices(c *gin.Context) {
	items, err := api.meta.ListDeviceServices(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDeviceService gets a device service by ID
// @Summary      Get DeviceService
// @Tags         Device Services
// @Produce      json
// @Param        id   path      string  true "DeviceService ID"
// @Success      200  {object}  models.DeviceService
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceservice/{id} [get]
func (api *API) GetDeviceService(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceServiceByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetDeviceServiceByName gets a device service by name
// @Summary      Get DeviceService By Name
// @Tags         Device Services
// @Produce      json
// @Param        name  path     string  true "DeviceService name"
// @Success      200  {object}  models.DeviceService
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceservice/name/{name} [get]
func (api *API) GetDeviceServiceByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceServiceByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateDeviceService registers a new device service
// @Summary      Add DeviceService
// @Tags         Device Services
// @Accept       json
// @Produce      json
// @Param        deviceservice  body  models.AddDeviceService  true "Add DeviceService"
// @Success      201  {object}  models.DeviceService
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/deviceservice [post]
func (api *API) CreateDeviceService(c *gin.Context) {
	var request models.AddDeviceService
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddDeviceService(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateDeviceService overlays fields onto an existing device service
// @Summary      Update DeviceService
// @Tags         Device Services
// @Accept       json
// @Produce      json
// @Param        id path string true "DeviceService ID"
// @Param        update  body  models.UpdateDeviceService  true "Update DeviceService"
// @Success      200  {object}  models.DeviceService
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceservice/{id} [put]
func (api *API) UpdateDeviceService(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateDeviceService
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateDeviceService(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteDeviceService removes a device service by ID
// @Summary      Delete DeviceService
// @Tags         Device Services
// @Produce      json
// @Param        id path string true "DeviceService ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceservice/{id} [delete]
func (api *API) DeleteDeviceService(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceServiceByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteDeviceServiceByName removes a device service by name
// @Summary      Delete DeviceService By Name
// @Tags         Device Services
// @Produce      json
// @Param        name path string true "DeviceService name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceservice/name/{name} [delete]
func (api *API) DeleteDeviceServiceByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceServiceByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
