package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
)

// ListSchedules lists all schedules
// @Summary      List Schedules
// @Tags         Schedules
// @Produce      json
// @Success      200  {object}  []models.Schedule
// @Failure      413  {object}  models.ValidationError
// @Failure      500  {object}  models.BaseError
// @Router       /api/v1/schedule [get]
func (api *API) ListSchedules(c *gin.Context) {
	items, err := api.meta.ListSchedules(c.Request.Context())
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSchedule gets a schedule by ID
// @Summary      Get Schedule
// @Tags         Schedules
// @Produce      json
// @Param        id   path      string  true "Schedule ID"
// @Success      200  {object}  models.Schedule
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/schedule/{id} [get]
func (api *API) GetSchedule(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	item, err := api.meta.GetScheduleByID(c.Request.Context(), id)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetScheduleByName gets a schedule by name
// @Summary      Get Schedule By Name
// @Tags         Schedules
// @Produce      json
// @Param        name  path     string  true "Schedule name"
// @Success      200  {object}  models.Schedule
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/schedule/name/{name} [get]
func (api *API) GetScheduleByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	item, err := api.meta.GetScheduleByName(c.Request.Context(), name)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateSchedule registers a new schedule
// @Summary      Add Schedule
// @Tags         Schedules
// @Accept       json
// @Produce      json
// @Param        schedule  body  models.AddSchedule  true "Add Schedule"
// @Success      201  {object}  models.Schedule
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Failure      409  {object}  models.ConflictsError
// @Router       /api/v1/schedule [post]
func (api *API) CreateSchedule(c *gin.Context) {
	var request models.AddSchedule
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.AddSchedule(c.Request.Context(), request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateSchedule overlays fields onto an existing schedule
// @Summary      Update Schedule
// @Tags         Schedules
// @Accept       json
// @Produce      json
// @Param        id path string true "Schedule ID"
// @Param        update  body  models.UpdateSchedule  true "Update Schedule"
// @Success      200  {object}  models.Schedule
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/schedule/{id} [put]
func (api *API) UpdateSchedule(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	var request models.UpdateSchedule
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPayloadError())
		return
	}
	item, err := api.meta.UpdateSchedule(c.Request.Context(), models.EntityRef{ID: id}, request)
	if err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteSchedule removes a schedule by ID
// @Summary      Delete Schedule
// @Tags         Schedules
// @Produce      json
// @Param        id path string true "Schedule ID"
// @Success      200  {object}  bool
// @Failure      400  {object}  models.ValidationError
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/schedule/{id} [delete]
func (api *API) DeleteSchedule(c *gin.Context) {
	id, ok := api.pathID(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteScheduleByID(c.Request.Context(), id); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteScheduleByName removes a schedule by name
// @Summary      Delete Schedule By Name
// @Tags         Schedules
// @Produce      json
// @Param        name path string true "Schedule name"
// @Success      200  {object}  bool
// @Failure      404  {object}  models.NotFoundError
// @Router       /api/v1/schedule/name/{name} [delete]
func (api *API) DeleteScheduleByName(c *gin.Context) {
	name, ok := api.pathName(c)
	if !ok {
		return
	}
	if err := api.meta.DeleteScheduleByName(c.Request.Context(), name); err != nil {
		api.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
