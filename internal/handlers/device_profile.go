package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListDeviceProfiles lists all device profiles
// @Summary      List Device Profiles
// @Tags         Device Profiles
// @Produce      json
// @Success      200  {object}  []models.DeviceProfile
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/deviceprofile [get]
func (api *API) ListDeviceProfiles(c *gin.Context) {
	items, err := api.meta.ListDeviceProfiles(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDeviceProfile gets a device profile by ID
// @Summary      Get DeviceProfile
// @Tags         Device Profiles
// @Produce      json
// @Param        id   path      string  true "DeviceProfile ID"
// @Success      200  {object}  models.DeviceProfile
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceprofile/{id} [get]
func (api *API) GetDeviceProfile(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceProfileByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetDeviceProfileByName gets a device profile by name
// @Summary      Get DeviceProfile By Name
// @Tags         Device Profiles
// @Produce      json
// @Param        name  path     string  true "DeviceProfile name"
// @Success      200  {object}  models.DeviceProfile
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceprofile/name/{name} [get]
func (api *API) GetDeviceProfileByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetDeviceProfileByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateDeviceProfile registers a new device profile
// @Summary      Add DeviceProfile
// @Tags         Device Profiles
// @Accept       json
// @Produce      json
// @Param        deviceprofile  body  models.AddDeviceProfile  true "Add DeviceProfile"
// @Success      201  {object}  models.DeviceProfile
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/deviceprofile [post]
func (api *API) CreateDeviceProfile(c *gin.Context) {
	var request models.AddDeviceProfile
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddDeviceProfile(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateDeviceProfile overlays fields onto an existing device profile
// @Summary      Update DeviceProfile
// @Tags         Device Profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "DeviceProfile ID"
// @Param        update  body  models.UpdateDeviceProfile  true "Update DeviceProfile"
// @Success      200  {object}  models.DeviceProfile
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceprofile/{id} [put]
func (api *API) UpdateDeviceProfile(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateDeviceProfile
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateDeviceProfile(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteDeviceProfile removes a device profile by ID
// @Summary      Delete DeviceProfile
// @Tags         Device Profiles
// @Produce      json
// @Param        id path string true "DeviceProfile ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceprofile/{id} [delete]
func (api *API) DeleteDeviceProfile(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceProfileByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteDeviceProfileByName removes a device profile by name
// @Summary      Delete DeviceProfile By Name
// @Tags         Device Profiles
// @Produce      json
// @Param        name path string true "DeviceProfile name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/deviceprofile/name/{name} [delete]
func (api *API) DeleteDeviceProfileByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteDeviceProfileByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
