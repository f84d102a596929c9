package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/models"
)

// registerDeviceFixtures persists the addressable, service and profile a
// device needs.
func (suite *HandlerTestSuite) registerDeviceFixtures(prefix string) (models.Addressable, models.DeviceService, models.DeviceProfile) {
	addressable := suite.createAddressable(fixtureAddressable(prefix + "-addr"))
	service := suite.createDeviceService(models.AddDeviceService{
		Name:           prefix + "-service",
		AdminState:     models.Unlocked,
		OperatingState: models.Enabled,
		Addressable:    models.EntityRef{ID: addressable.ID},
	})
	profile := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:     prefix + "-profile",
		Commands: []models.AddCommand{{Name: "Status"}},
	})
	return addressable, service, profile
}

func (suite *HandlerTestSuite) TestCreateGetDevice() {
	assert := suite.Assert()

	addressable, service, profile := suite.registerDeviceFixtures("dev")
	created := suite.createDevice(models.AddDevice{
		Name:           "living-room-thermostat",
		Description:    "hallway unit",
		AdminState:     models.Unlocked,
		OperatingState: models.Enabled,
		Labels:         []string{"hvac", "indoor"},
		Addressable:    models.EntityRef{ID: addressable.ID},
		Service:        models.EntityRef{Name: service.Name},
		Profile:        models.EntityRef{Name: profile.Name},
	})

	_, res, err := suite.ServeRequest(
		http.MethodGet, "/:id", "/"+created.ID.String(),
		suite.api.GetDevice, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.Device
	suite.decodeBody(res, &actual)
	assert.Equal("living-room-thermostat", actual.Name)
	suite.Require().NotNil(actual.Addressable)
	assert.Equal(addressable.ID, actual.Addressable.ID)
	suite.Require().NotNil(actual.Service)
	assert.Equal(service.ID, actual.Service.ID)
	suite.Require().NotNil(actual.Profile)
	assert.Equal(profile.ID, actual.Profile.ID)
	suite.Require().Len(actual.Profile.Commands, 1)
	assert.Equal("Status", actual.Profile.Commands[0].Name)

	// the create was announced to the owning service
	recorded := suite.notifier.Recorded()
	suite.Require().Len(recorded, 1)
	assert.Equal(models.SubjectDevice, recorded[0].Subject)
	assert.Equal(created.ID.String(), recorded[0].ID)
	assert.Equal(callback.ChangeCreate, recorded[0].Change)
	suite.Require().Len(recorded[0].Owners, 1)
	assert.Equal(service.ID, recorded[0].Owners[0].ID)
}

func (suite *HandlerTestSuite) TestCreateDeviceUnresolvedReferences() {
	assert := suite.Assert()

	addressable, service, profile := suite.registerDeviceFixtures("partial")

	payloads := []models.AddDevice{
		{
			Name:        "no-addressable",
			Addressable: models.EntityRef{Name: "missing"},
			Service:     models.EntityRef{ID: service.ID},
			Profile:     models.EntityRef{ID: profile.ID},
		},
		{
			Name:        "no-service",
			Addressable: models.EntityRef{ID: addressable.ID},
			Service:     models.EntityRef{Name: "missing"},
			Profile:     models.EntityRef{ID: profile.ID},
		},
		{
			Name:        "no-profile",
			Addressable: models.EntityRef{ID: addressable.ID},
			Service:     models.EntityRef{ID: service.ID},
			Profile:     models.EntityRef{Name: "missing"},
		},
	}
	for _, payload := range payloads {
		_, res, err := suite.ServeRequest(
			http.MethodPost, "/", "/",
			suite.api.CreateDevice, suite.jsonBody(payload),
		)
		assert.NoError(err)
		assert.Equal(http.StatusBadRequest, res.Code, "payload %q, body: %s", payload.Name, res.Body.String())
	}
}

func (suite *HandlerTestSuite) TestCreateDeviceConflict() {
	assert := suite.Assert()

	addressable, service, profile := suite.registerDeviceFixtures("dup")
	payload := models.AddDevice{
		Name:        "duplicated-device",
		Addressable: models.EntityRef{ID: addressable.ID},
		Service:     models.EntityRef{ID: service.ID},
		Profile:     models.EntityRef{ID: profile.ID},
	}
	suite.createDevice(payload)

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateDevice, suite.jsonBody(payload),
	)
	assert.NoError(err)
	assert.Equal(http.StatusConflict, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateDeviceOverlay() {
	assert := suite.Assert()

	addressable, service, profile := suite.registerDeviceFixtures("upd")
	created := suite.createDevice(models.AddDevice{
		Name:           "updatable-device",
		AdminState:     models.Unlocked,
		OperatingState: models.Enabled,
		Labels:         []string{"original"},
		Addressable:    models.EntityRef{ID: addressable.ID},
		Service:        models.EntityRef{ID: service.ID},
		Profile:        models.EntityRef{ID: profile.ID},
	})
	suite.notifier.Reset()

	disabled := models.Disabled
	lastReported := int64(1756650000000)
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateDevice, suite.jsonBody(models.UpdateDevice{
			OperatingState: &disabled,
			LastReported:   &lastReported,
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.Device
	suite.decodeBody(res, &actual)
	assert.Equal(models.Disabled, actual.OperatingState)
	assert.Equal(lastReported, actual.LastReported)
	assert.Equal(models.Unlocked, actual.AdminState)
	assert.Equal([]string{"original"}, []string(actual.Labels))

	recorded := suite.notifier.Recorded()
	suite.Require().Len(recorded, 1)
	assert.Equal(callback.ChangeUpdate, recorded[0].Change)
	assert.Equal(models.SubjectDevice, recorded[0].Subject)
}

func (suite *HandlerTestSuite) TestUpdateDeviceExplicitZero() {
	assert := suite.Assert()

	addressable, service, profile := suite.registerDeviceFixtures("zero")
	created := suite.createDevice(models.AddDevice{
		Name:        "zeroable-device",
		Addressable: models.EntityRef{ID: addressable.ID},
		Service:     models.EntityRef{ID: service.ID},
		Profile:     models.EntityRef{ID: profile.ID},
	})

	lastConnected := int64(1756600000000)
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateDevice, suite.jsonBody(models.UpdateDevice{LastConnected: &lastConnected}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	// a present zero resets the field, unlike an absent one
	zero := int64(0)
	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateDevice, suite.jsonBody(models.UpdateDevice{LastConnected: &zero}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.Device
	suite.decodeBody(res, &actual)
	assert.Equal(int64(0), actual.LastConnected)
}

func (suite *HandlerTestSuite) TestDeleteDeviceCascadesReports() {
	assert := suite.Assert()
	require := suite.Require()

	addressable, service, profile := suite.registerDeviceFixtures("rep")
	device := suite.createDevice(models.AddDevice{
		Name:        "reporting-device",
		Addressable: models.EntityRef{ID: addressable.ID},
		Service:     models.EntityRef{ID: service.ID},
		Profile:     models.EntityRef{ID: profile.ID},
	})

	schedule := suite.createSchedule(models.AddSchedule{Name: "report-schedule"})
	event := suite.createScheduleEvent(models.AddScheduleEvent{
		Name:        "report-event",
		Schedule:    schedule.Name,
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateDeviceReport, suite.jsonBody(models.AddDeviceReport{
			Name:   "orphanable-report",
			Device: device.Name,
			Event:  event.Name,
		}),
	)
	require.NoError(err)
	require.Equal(http.StatusCreated, res.Code, "body: %s", res.Body.String())

	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/name/:name", "/name/reporting-device",
		suite.api.DeleteDeviceByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	_, res, _ = suite.ServeRequest(http.MethodGet, "/name/:name", "/name/orphanable-report", suite.api.GetDeviceReportByName, nil)
	assert.Equal(http.StatusNotFound, res.Code)

	// the event referenced by the report is untouched
	_, res, _ = suite.ServeRequest(http.MethodGet, "/name/:name", "/name/report-event", suite.api.GetScheduleEventByName, nil)
	assert.Equal(http.StatusOK, res.Code)
}
