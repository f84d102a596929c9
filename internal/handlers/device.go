package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListDevices lists all devices
// @Summary      List Devices
// @Tags         Devices
// @Produce      json
// @Success      200  {object}  []models.Device
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/device [get]
func (api *API) ListDevices(c *gin.Context) {
	items, err := api.meta.ListDevices(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDevice gets a device by ID
// @Summary      Get Device
// @Tags         Devices
// @Produce      json
// @Param        id   path      string  true "Device ID"
// @Success      200  {object}  models.Device
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/device/{id} [get]
func (api *API) GetDevice(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetDeviceByName gets a device by name
// @Summary      Get Device By Name
// @Tags         Devices
// @Produce      json
// @Param        name  path     string  true "Device name"
// @Success      200  {object}  models.Device
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/device/name/{name} [get]
func (api *API) GetDeviceByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateDevice registers a new device
// @Summary      Add Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        device  body  models.AddDevice  true "Add Device"
// @Success      201  {object}  models.Device
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/device [post]
func (api *API) CreateDevice(c *gin.Context) {
	var request models.AddDevice
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddDevice(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateDevice overlays fields onto an existing device
// @Summary      Update Device
// @Tags         Devices
// @Accept       json
// @Produce      json
// @Param        id path string true "Device ID"
// @Param        update  body  models.UpdateDevice  true "Update Device"
// @Success      200  {object}  models.Device
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/device/{id} [put]
func (api *API) UpdateDevice(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateDevice
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateDevice(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteDevice removes a device by ID
// @Summary      Delete Device
// @Tags         Devices
// @Produce      json
// @Param        id path string true "Device ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/device/{id} [delete]
func (api *API) DeleteDevice(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteDeviceByName removes a device by name
// @Summary      Delete Device By Name
// @Tags         Devices
// @Produce      json
// @Param        name path string true "Device name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/device/name/{name} [delete]
func (api *API) DeleteDeviceByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
