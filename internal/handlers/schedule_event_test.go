package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
)

func (suite *HandlerTestSuite) TestCreateGetScheduleEvent() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("event-addr"))
	schedule := suite.createSchedule(models.AddSchedule{Name: "event-schedule"})
	created := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "midday-poll-event",
		Schedule:    schedule.Name,
		Parameters:  `{"deep": true}`,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	_, res, err := suite.ServeRequest(
		http.MethodGet, "/:id", "/"+created.ID.String(),
		suite.api.GetScheduleEvent, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.ScheduleEvent
	suite.decodeBody(res, &actual)
	assert.Equal("midday-poll-event", actual.Name)
	assert.Equal("event-schedule", actual.Schedule)
	suite.Require().NotNil(actual.Addressable)
	assert.Equal(addressable.ID, actual.Addressable.ID)
}

func (suite *HandlerTestSuite) TestCreateScheduleEventRequiresSchedule() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("dangling-event-addr"))

	// a schedule name that resolves to nothing fails the write
	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateScheduleEvent, suite.jsonBody(models.AddScheduleEvent{
			Name:        "dangling-event",
			Schedule:    "no-such-schedule",
			Addressable: models.EntityRef{ID: addressable.ID},
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestScheduleEventServiceNameIsWeak() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("weak-ref-addr"))
	schedule := suite.createSchedule(models.AddSchedule{Name: "weak-ref-schedule"})

	// the service name is not checked against existing device services
	created := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "weak-ref-event",
		Schedule:    schedule.Name,
		Service:     "not-yet-registered-service",
		Addressable: models.EntityRef{ID: addressable.ID},
	})
	assert.Equal("not-yet-registered-service", created.Service)

	// and an unresolvable name simply means nobody gets notified
	assert.Empty(suite.notifier.Recorded())
}

func (suite *HandlerTestSuite) TestScheduleEventNotifiesOwningService() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("owned-event-addr"))
	service := suite.createDeviceService(models.AddDeviceService{
		Name:        "event-owner-service",
		Addressable: models.EntityRef{ID: addressable.ID},
	})
	schedule := suite.createSchedule(models.AddSchedule{Name: "owned-event-schedule"})
	suite.notifier.Reset()

	created := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "owned-event",
		Schedule:    schedule.Name,
		Service:     service.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	recorded := suite.notifier.Recorded()
	suite.Require().Len(recorded, 1)
	assert.Equal(models.SubjectScheduleEvent, recorded[0].Subject)
	assert.Equal(created.ID.String(), recorded[0].ID)
	assert.Equal(callback.ChangeCreate, recorded[0].Change)
	suite.Require().Len(recorded[0].Owners, 1)
	assert.Equal(service.ID, recorded[0].Owners[0].ID)
}

func (suite *HandlerTestSuite) TestRenameScheduleEventBlockedWhileReferenced() {
	assert := suite.Assert()
	require := suite.Require()

	addressable, service, profile := suite.registerDeviceFixtures("evren")
	device := suite.createDevice(models.AddDevice{
		Name:        "evren-device",
		Addressable: models.EntityRef{ID: addressable.ID},
		Service:     models.EntityRef{ID: service.ID},
		Profile:     models.EntityRef{ID: profile.ID},
	})
	schedule := suite.createSchedule(models.AddSchedule{Name: "evren-schedule"})
	event := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "evren-event",
		Schedule:    schedule.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateDeviceReport, suite.jsonBody(models.AddDeviceReport{
			Name:   "evren-report",
			Device: device.Name,
			Event:  event.Name,
		}),
	)
	require.NoError(err)
	require.Equal(http.StatusCreated, res.Code, "body: %s", res.Body.String())

	renamed := "evren-event-renamed"
	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+event.ID.String(),
		suite.api.UpdateScheduleEvent, suite.jsonBody(models.UpdateScheduleEvent{Name: &renamed}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	// the delete is gated on the same reference
	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+event.ID.String(),
		suite.api.DeleteScheduleEvent, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateScheduleEventScheduleMustResolve() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("resched-addr"))
	schedule := suite.createSchedule(models.AddSchedule{Name: "resched-original"})
	replacement := suite.createSchedule(models.AddSchedule{Name: "resched-replacement"})
	event := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "resched-event",
		Schedule:    schedule.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	missing := "resched-missing"
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+event.ID.String(),
		suite.api.UpdateScheduleEvent, suite.jsonBody(models.UpdateScheduleEvent{Schedule: &missing}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusNotFound, res.Code, "body: %s", res.Body.String())

	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+event.ID.String(),
		suite.api.UpdateScheduleEvent, suite.jsonBody(models.UpdateScheduleEvent{Schedule: &replacement.Name}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.ScheduleEvent
	suite.decodeBody(res, &actual)
	assert.Equal("resched-replacement", actual.Schedule)
}
