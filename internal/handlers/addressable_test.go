package handlers

import (
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/google/uuid"
)

func (suite *HandlerTestSuite) TestCreateGetAddressable() {
	assert := suite.Assert()

	created := suite.createAddressable(fixtureAddressable("camera-feed"))
	assert.NotEqual(uuid.Nil, created.ID)
	assert.Equal("camera-feed", created.Name)
	assert.Equal("HTTP", created.Protocol)

	{
		_, res, err := suite.ServeRequest(
			http.MethodGet, "/:id", "/"+created.ID.String(),
			suite.api.GetAddressable, nil,
		)
		assert.NoError(err)
		assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

		var actual models.Addressable
		suite.decodeBody(res, &actual)
		assert.Equal(created.ID, actual.ID)
		assert.Equal("camera-feed", actual.Name)
	}

	{
		_, res, err := suite.ServeRequest(
			http.MethodGet, "/name/:name", "/name/camera-feed",
			suite.api.GetAddressableByName, nil,
		)
		assert.NoError(err)
		assert.Equal(http.StatusOK, res.Code)

		var actual models.Addressable
		suite.decodeBody(res, &actual)
		assert.Equal(created.ID, actual.ID)
	}

	{
		_, res, err := suite.ServeRequest(
			http.MethodGet, "/:id", "/"+uuid.NewString(),
			suite.api.GetAddressable, nil,
		)
		assert.NoError(err)
		assert.Equal(http.StatusNotFound, res.Code)
	}

	{
		_, res, err := suite.ServeRequest(
			http.MethodGet, "/:id", "/not-a-uuid",
			suite.api.GetAddressable, nil,
		)
		assert.NoError(err)
		assert.Equal(http.StatusBadRequest, res.Code)
	}
}

func (suite *HandlerTestSuite) TestListAddressables() {
	assert := suite.Assert()

	suite.createAddressable(fixtureAddressable("addr-c"))
	suite.createAddressable(fixtureAddressable("addr-a"))
	suite.createAddressable(fixtureAddressable("addr-b"))

	_, res, err := suite.ServeRequest(
		http.MethodGet, "/", "/",
		suite.api.ListAddressables, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	var actual []models.Addressable
	suite.decodeBody(res, &actual)
	assert.Len(actual, 3)
	assert.Equal("addr-a", actual[0].Name)
	assert.Equal("addr-b", actual[1].Name)
	assert.Equal("addr-c", actual[2].Name)
}

func (suite *HandlerTestSuite) TestCreateAddressableConflict() {
	assert := suite.Assert()

	suite.createAddressable(fixtureAddressable("duplicated"))

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateAddressable, suite.jsonBody(fixtureAddressable("duplicated")),
	)
	assert.NoError(err)
	assert.Equal(http.StatusConflict, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestCreateAddressableRequiresName() {
	assert := suite.Assert()

	_, res, err := suite.ServeRequest(
		http.MethodPost, "/", "/",
		suite.api.CreateAddressable, suite.jsonBody(models.AddAddressable{Protocol: "HTTP"}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code)
}

func (suite *HandlerTestSuite) TestUpdateAddressableOverlay() {
	assert := suite.Assert()

	created := suite.createAddressable(fixtureAddressable("overlay-target"))

	address := "10.0.0.9"
	port := 50000
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+created.ID.String(),
		suite.api.UpdateAddressable, suite.jsonBody(models.UpdateAddressable{
			Address: &address,
			Port:    &port,
		}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())

	var actual models.Addressable
	suite.decodeBody(res, &actual)
	assert.Equal("10.0.0.9", actual.Address)
	assert.Equal(50000, actual.Port)
	// untouched fields keep their stored values
	assert.Equal("overlay-target", actual.Name)
	assert.Equal("HTTP", actual.Protocol)
	assert.Equal("/api/v1/callback", actual.Path)
}

func (suite *HandlerTestSuite) TestRenameAddressableBlockedWhileReferenced() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("callback-endpoint"))
	suite.createDeviceService(models.AddDeviceService{
		Name:        "referencing-service",
		Addressable: models.EntityRef{ID: addressable.ID},
	})

	renamed := "new-name"
	_, res, err := suite.ServeRequest(
		http.MethodPut, "/:id", "/"+addressable.ID.String(),
		suite.api.UpdateAddressable, suite.jsonBody(models.UpdateAddressable{Name: &renamed}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())

	// non-name fields are still updatable while referenced
	address := "10.1.1.1"
	_, res, err = suite.ServeRequest(
		http.MethodPut, "/:id", "/"+addressable.ID.String(),
		suite.api.UpdateAddressable, suite.jsonBody(models.UpdateAddressable{Address: &address}),
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code, "body: %s", res.Body.String())
}

func (suite *HandlerTestSuite) TestDeleteAddressable() {
	assert := suite.Assert()

	created := suite.createAddressable(fixtureAddressable("short-lived"))

	_, res, err := suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+created.ID.String(),
		suite.api.DeleteAddressable, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)
	assert.Equal("true", res.Body.String())

	_, res, err = suite.ServeRequest(
		http.MethodGet, "/:id", "/"+created.ID.String(),
		suite.api.GetAddressable, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusNotFound, res.Code)
}

func (suite *HandlerTestSuite) TestDeleteAddressableByName() {
	assert := suite.Assert()

	suite.createAddressable(fixtureAddressable("named-target"))

	_, res, err := suite.ServeRequest(
		http.MethodDelete, "/name/:name", "/name/named-target",
		suite.api.DeleteAddressableByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusOK, res.Code)

	_, res, err = suite.ServeRequest(
		http.MethodDelete, "/name/:name", "/name/named-target",
		suite.api.DeleteAddressableByName, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusNotFound, res.Code)
}

func (suite *HandlerTestSuite) TestDeleteAddressableBlockedWhileReferenced() {
	assert := suite.Assert()

	addressable := suite.createAddressable(fixtureAddressable("in-use"))
	suite.createDeviceService(models.AddDeviceService{
		Name:        "user-service",
		Addressable: models.EntityRef{Name: "in-use"},
	})

	_, res, err := suite.ServeRequest(
		http.MethodDelete, "/:id", "/"+addressable.ID.String(),
		suite.api.DeleteAddressable, nil,
	)
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, res.Code, "body: %s", res.Body.String())
}
