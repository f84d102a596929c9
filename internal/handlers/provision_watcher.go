package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListProvisionWatchers lists all provision watchers
// @Summary      List Provision Watchers
// @Tags         Provision Watchers
// @Produce      json
// @Success      200  {object}  []models.ProvisionWatcher
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/provisionwatcher [get]
func (api *API) ListProvisionWatchers(c *gin.Context) {
	items, err := api.meta.ListProvisionWatchers(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetProvisionWatcher gets a provision watcher by ID
// @Summary      Get ProvisionWatcher
// @Tags         Provision Watchers
// @Produce      json
// @Param        id   path      string  true "ProvisionWatcher ID"
// @Success      200  {object}  models.ProvisionWatcher
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/provisionwatcher/{id} [get]
func (api *API) GetProvisionWatcher(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetProvisionWatcherByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetProvisionWatcherByName gets a provision watcher by name
// @Summary      Get ProvisionWatcher By Name
// @Tags         Provision Watchers
// @Produce      json
// @Param        name  path     string  true "ProvisionWatcher name"
// @Success      200  {object}  models.ProvisionWatcher
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/provisionwatcher/name/{name} [get]
func (api *API) GetProvisionWatcherByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetProvisionWatcherByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateProvisionWatcher registers a new provision watcher
// @Summary      Add ProvisionWatcher
// @Tags         Provision Watchers
// @Accept       json
// @Produce      json
// @Param        provisionwatcher  body  models.AddProvisionWatcher  true "Add ProvisionWatcher"
// @Success      201  {object}  models.ProvisionWatcher
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/provisionwatcher [post]
func (api *API) CreateProvisionWatcher(c *gin.Context) {
	var request models.AddProvisionWatcher
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddProvisionWatcher(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateProvisionWatcher overlays fields onto an existing provision watcher
// @Summary      Update ProvisionWatcher
// @Tags         Provision Watchers
// @Accept       json
// @Produce      json
// @Param        id path string true "ProvisionWatcher ID"
// @Param        update  body  models.UpdateProvisionWatcher  true "Update ProvisionWatcher"
// @Success      200  {object}  models.ProvisionWatcher
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/provisionwatcher/{id} [put]
func (api *API) UpdateProvisionWatcher(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateProvisionWatcher
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateProvisionWatcher(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteProvisionWatcher removes a provision watcher by ID
// @Summary      Delete ProvisionWatcher
// @Tags         Provision Watchers
// @Produce      json
// @Param        id path string true "ProvisionWatcher ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/provisionwatcher/{id} [delete]
func (api *API) DeleteProvisionWatcher(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteProvisionWatcherByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteProvisionWatcherByName removes a provision watcher by name
// @Summary      Delete ProvisionWatcher By Name
// @Tags         Provision Watchers
// @Produce      json
// @Param        name path string true "ProvisionWatcher name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/provisionwatcher/name/{name} [delete]
func (api *API) DeleteProvisionWatcherByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteProvisionWatcherByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
