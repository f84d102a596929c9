package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListScheduleEvents lists all schedule events
// @Summary      List Schedule Events
// @Tags         Schedule Events
// @Produce      json
// @Success      200  {object}  []models.ScheduleEvent
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/scheduleevent [get]
func (api *API) ListScheduleEvents(c *gin.Context) {
	items, err := api.meta.ListScheduleEvents(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetScheduleEvent gets a schedule event by ID
// @Summary      Get ScheduleEvent
// @Tags         Schedule Events
// @Produce      json
// @Param        id   path      string  true "ScheduleEvent ID"
// @Success      200  {object}  models.ScheduleEvent
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/scheduleevent/{id} [get]
func (api *API) GetScheduleEvent(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetScheduleEventByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetScheduleEventByName gets a schedule event by name
// @Summary      Get ScheduleEvent By Name
// @Tags         Schedule Events
// @Produce      json
// @Param        name  path     string  true "ScheduleEvent name"
// @Success      200  {object}  models.ScheduleEvent
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/scheduleevent/name/{name} [get]
func (api *API) GetScheduleEventByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetScheduleEventByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateScheduleEvent registers a new schedule event
// @Summary      Add ScheduleEvent
// @Tags         Schedule Events
// @Accept       json
// @Produce      json
// @Param        scheduleevent  body  models.AddScheduleEvent  true "Add ScheduleEvent"
// @Success      201  {object}  models.ScheduleEvent
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/scheduleevent [post]
func (api *API) CreateScheduleEvent(c *gin.Context) {
	var request models.AddScheduleEvent
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddScheduleEvent(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateScheduleEvent overlays fields onto an existing schedule event
// @Summary      Update ScheduleEvent
// @Tags         Schedule Events
// @Accept       json
// @Produce      json
// @Param        id path string true "ScheduleEvent ID"
// @Param        update  body  models.UpdateScheduleEvent  true "Update ScheduleEvent"
// @Success      200  {object}  models.ScheduleEvent
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/scheduleevent/{id} [put]
func (api *API) UpdateScheduleEvent(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateScheduleEvent
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateScheduleEvent(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteScheduleEvent removes a schedule event by ID
// @Summary      Delete ScheduleEvent
// @Tags         Schedule Events
// @Produce      json
// @Param        id path string true "ScheduleEvent ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/scheduleevent/{id} [delete]
func (api *API) DeleteScheduleEvent(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteScheduleEventByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteScheduleEventByName removes a schedule event by name
// @Summary      Delete ScheduleEvent By Name
// @Tags         Schedule Events
// @Produce      json
// @Param        name path string true "ScheduleEvent name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/scheduleevent/name/{name} [delete]
func (api *API) DeleteScheduleEventByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteScheduleEventByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
