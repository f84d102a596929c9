package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListAddressables lists all addressables
// @Summary      List Addressables
// @Description  Lists all addressables
// @Tags         Addressables
// @Accept       json
// @Produce      json
// @Success      200  {object}  []models.Addressable
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/addressable [get]
func (api *API) ListAddressables(c *gin.Context) {
	addressables, err := api.meta.ListAddressables(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, addressables)
}

// GetAddressable gets an addressable by ID
// @Summary      Get Addressable
// @Description  Gets an addressable by ID
// @Tags         Addressables
// @Accept       json
// @Produce      json
// @Param        id   path      string  true "Addressable ID"
// @Success      200  {object}  models.Addressable
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/addressable/{id} [get]
func (api *API) GetAddressable(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	addressable, err := api.meta.GetAddressableByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, addressable)
}

// GetAddressableByName gets an addressable by name
// @Summary      Get Addressable By Name
// @Tags         Addressables
// @Produce      json
// @Param        name  path     string  true "Addressable name"
// @Success      200  {object}  models.Addressable
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/addressable/name/{name} [get]
func (api *API) GetAddressableByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	addressable, err := api.meta.GetAddressableByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, addressable)
}

// CreateAddressable registers a new addressable
// @Summary      Add Addressable
// @Description  Registers a new addressable endpoint
// @Tags         Addressables
// @Accept       json
// @Produce      json
// @Param        addressable  body  models.AddAddressable  true "Add Addressable"
// @Success      201  {object}  models.Addressable
// @Failure      400  {object}  models.ValidationError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/addressable [post]
func (api *API) CreateAddressable(c *gin.Context) {
	var request models.AddAddressable
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	addressable, err := api.meta.AddAddressable(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addressable)
}

// UpdateAddressable overlays fields onto an existing addressable
// @Summary      Update Addressable
// @Tags         Addressables
// @Accept       json
// @Produce      json
// @Param        id path string true "Addressable ID"
// @Param        update  body  models.UpdateAddressable  true "Update Addressable"
// @Success      200  {object}  models.Addressable
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/addressable/{id} [put]
func (api *API) UpdateAddressable(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateAddressable
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	addressable, err := api.meta.UpdateAddressable(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, addressable)
}

// DeleteAddressable removes an addressable by ID
// @Summary      Delete Addressable
// @Tags         Addressables
// @Produce      json
// @Param        id path string true "Addressable ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/addressable/{id} [delete]
func (api *API) DeleteAddressable(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteAddressableByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteAddressableByName removes an addressable by name
// @Summary      Delete Addressable By Name
// @Tags         Addressables
// @Produce      json
// @Param        name path string true "Addressable name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/addressable/name/{name} [delete]
func (api *API) DeleteAddressableByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteAddressableByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
