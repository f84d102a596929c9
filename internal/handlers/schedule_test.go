package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
)

func (suite *HandlerTestSuite) TestCreateGetSchedule() {
	assert := suite.Assert()

	created := suite.createSchedule(models.AddSchedule{
		Name:      "midday-poll",
		Start:     "20260101T000000",
		Frequency: "PT15M",
		Cron:      "0 0 12 * * ?",
	})
	assert.Equal("0 0 12 * * ?", created.Cron)

	_, res, err := suite.ServeRequest(
		http.MethodGet, "/name/:name", "/name/midday-poll",
		suite.api.GetScheduleByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.Schedule
	suite.decodeBody(res, &actual)
	assert.Equal(created.ID, actual.ID)
	assert.Equal("PT15M", actual.Frequency)
	assert.False(actual.RunOnce)
}

func (suite *HandlerTestSuite) TestCreateScheduleInvalidCron() {
	assert := suite.Assert()

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateSchedule, suite.jsonBody(models.AddSchedule{
			Name: "broken-schedule",
			Cron: "not a cron expression",
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestCreateScheduleEmptyCronAllowed() {
	assert := suite.Assert()

	created := suite.createSchedule(models.AddSchedule{
		Name:      "interval-only",
		Frequency: "PT1H",
	})
	assert.Empty(created.Cron)
}

func (suite *HandlerTestSuite) TestUpdateScheduleCronRevalidated() {
	assert := suite.Assert()

	created := suite.createSchedule(models.AddSchedule{
		Name: "revalidated",
		Cron: "0 0 12 * * ?",
	})

	bad := "61 99 * *"
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateSchedule, suite.jsonBody(models.UpdateSchedule{Cron: &bad}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	good := "0 30 8 * * ?"
	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateSchedule, suite.jsonBody(models.UpdateSchedule{Cron: &good}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.Schedule
	suite.decodeBody(res, &actual)
	assert.Equal(good, actual.Cron)
}

func (suite *HandlerTestSuite) TestRenameScheduleBlockedWhileReferenced() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("sched-addr"))
	schedule := suite.createSchedule(models.AddSchedule{Name: "referenced-schedule"})
	suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "attached-event",
		Schedule:    schedule.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	renamed := "new-schedule-name"
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+schedule.ID.String(),
		suite.api.UpdateSchedule, suite.jsonBody(models.UpdateSchedule{Name: &renamed}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	// a no-op "rename" to the current name is not a rename at all
	same := "referenced-schedule"
	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+schedule.ID.String(),
		suite.api.UpdateSchedule, suite.jsonBody(models.UpdateSchedule{Name: &same}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	// dropping the event unblocks the rename
	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/name/:name", "/name/attached-event",
		suite.api.DeleteScheduleEventByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+schedule.ID.String(),
		suite.api.UpdateSchedule, suite.jsonBody(models.UpdateSchedule{Name: &renamed}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.Schedule
	suite.decodeBody(res, &actual)
	assert.Equal("new-schedule-name", actual.Name)
}

func (suite *HandlerTestSuite) TestDeleteScheduleBlockedWhileReferenced() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("sched-guard-addr"))
	schedule := suite.createSchedule(models.AddSchedule{Name: "guarded-schedule"})
	event := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "guarding-event",
		Schedule:    schedule.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	_, res, err := suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+schedule.ID.String(),
		suite.api.DeleteSchedule, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+event.ID.String(),
		suite.api.DeleteScheduleEvent, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+schedule.ID.String(),
		suite.api.DeleteSchedule, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())
}
