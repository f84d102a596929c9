package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
)

func thermostatCommands() []models.AddCommand {
	return []models.AddCommand{
		{
			Name: "Temperature",
			Get: &models.Action{
				Path: "/api/v1/device/{deviceId}/temperature",
				Responses: []models.Response{
					{Code: "200", Description: "current temperature"},
				},
			},
		},
		{
			Name: "Setpoint",
			Get:  &models.Action{Path: "/api/v1/device/{deviceId}/setpoint"},
			Put: &models.Action{
				Path:           "/api/v1/device/{deviceId}/setpoint",
				ParameterNames: []string{"value"},
			},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateGetDeviceProfile() {
	assert := suite.Assert()

	created := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:         "thermostat-profile",
		Manufacturer: "Acme",
		Model:        "TH-2000",
		Labels:       []string{"hvac"},
		Commands:     thermostatCommands(),
	})
	assert.Len(created.Commands, 2)

	_, res, err := suite.ServeRequest(
		http.MethodGet, "/:id", "/"+created.ID.String(),
		suite.api.GetDeviceProfile, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.DeviceProfile
	suite.decodeBody(res, &actual)
	assert.Equal("thermostat-profile", actual.Name)
	assert.Equal("Acme", actual.Manufacturer)
	suite.Require().Len(actual.Commands, 2)

	names := []string{actual.Commands[0].Name, actual.Commands[1].Name}
	assert.ElementsMatch([]string{"Temperature", "Setpoint"}, names)
	for _, command := range actual.Commands {
		if command.Name == "Setpoint" {
			suite.Require().NotNil(command.Put)
			assert.Equal([]string{"value"}, command.Put.ParameterNames)
		}
	}
}

func (suite *HandlerTestSuite) TestCreateDeviceProfileDuplicateCommandNames() {
	assert := suite.Assert()

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateDeviceProfile, suite.jsonBody(models.AddDeviceProfile{
			Name: "broken-profile",
			Commands: []models.AddCommand{
				{Name: "Temperature"},
				{Name: "Temperature"},
			},
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	// nothing was persisted, not even the profile itself
	_, res, err = suite.ServeRequest(
		http.MethodGet, "/name/:name", "/name/broken-profile",
		suite.api.GetDeviceProfileByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusNotFound, res.Code)
}

func (suite *HandlerTestSuite) TestCommandNamesMayRepeatAcrossProfiles() {
	assert := suite.Assert()

	first := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:     "profile-one",
		Commands: []models.AddCommand{{Name: "Temperature"}},
	})
	second := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:     "profile-two",
		Commands: []models.AddCommand{{Name: "Temperature"}},
	})
	assert.Len(first.Commands, 1)
	assert.Len(second.Commands, 1)
	assert.NotEqual(first.Commands[0].ID, second.Commands[0].ID)
}

func (suite *HandlerTestSuite) TestUpdateDeviceProfileReplacesCommands() {
	assert := suite.Assert()

	created := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:     "evolving-profile",
		Commands: thermostatCommands(),
	})

	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateDeviceProfile, suite.jsonBody(models.UpdateDeviceProfile{
			Commands: []models.AddCommand{
				{Name: "Humidity", Get: &models.Action{Path: "/api/v1/device/{deviceId}/humidity"}},
			},
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.DeviceProfile
	suite.decodeBody(res, &actual)
	suite.Require().Len(actual.Commands, 1)
	assert.Equal("Humidity", actual.Commands[0].Name)
	// the profile's own fields were left alone
	assert.Equal("evolving-profile", actual.Name)
}

func (suite *HandlerTestSuite) TestUpdateDeviceProfileKeepsCommandsWhenOmitted() {
	assert := suite.Assert()

	created := suite.createDeviceProfile(models.AddDeviceProfile{
		Name:     "stable-profile",
		Commands: thermostatCommands(),
	})

	manufacturer := "NewCorp"
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateDeviceProfile, suite.jsonBody(models.UpdateDeviceProfile{
			Manufacturer: &manufacturer,
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual models.DeviceProfile
	suite.decodeBody(res, &actual)
	assert.Equal("NewCorp", actual.Manufacturer)
	assert.Len(actual.Commands, 2)
}

func (suite *HandlerTestSuite) TestDeleteDeviceProfileBlockedWhileReferenced() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("profile-guard-addr"))
	service := suite.createDeviceService(models.AddDeviceService{
		Name:        "profile-guard-service",
		Addressable: models.EntityRef{ID: addressable.ID},
	})
	profile := suite.createDeviceProfile(models.AddDeviceProfile{Name: "guarded-profile"})
	device := suite.createDevice(models.AddDevice{
		Name:        "profile-guard-device",
		Addressable: models.EntityRef{ID: addressable.ID},
		Service:     models.EntityRef{ID: service.ID},
		Profile:     models.EntityRef{ID: profile.ID},
	})

	_, res, err := suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+profile.ID.String(),
		suite.api.DeleteDeviceProfile, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	// removing the device unblocks the delete
	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+device.ID.String(),
		suite.api.DeleteDevice, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+profile.ID.String(),
		suite.api.DeleteDeviceProfile, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())
}
