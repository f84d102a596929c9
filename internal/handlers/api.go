package handlers

import (
	"errors"
	"net/http"

	"github.com/edgefleet-io/edgefleet/internal/metadata"
	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// API binds the metadata service to gin. It holds no state of its own; all
// policy lives in the metadata package.
type API struct {
	logger *zap.SugaredLogger
	meta   *metadata.Service
}

func NewAPI(logger *zap.SugaredLogger, meta *metadata.Service) *API {
	return &API{
		logger: logger,
		meta:   meta,
	}
}

// sendError maps the metadata error taxonomy onto HTTP status codes.
func (api *API) sendError(c *gin.Context, err error) {
	var notFound metadata.NotFoundError
	var validation metadata.DataValidationError
	var limit metadata.LimitExceededError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, models.NewNotFoundError(notFound.Resource))
	case errors.As(err, &validation):
		if validation.Duplicate {
			c.JSON(http.StatusConflict, models.NewConflictsError(""))
			return
		}
		c.JSON(http.StatusBadRequest, models.NewFieldValidationError("", validation.Reason))
	case errors.As(err, &limit):
		c.JSON(http.StatusRequestEntityTooLarge, models.NewFieldValidationError("", limit.Error()))
	default:
		api.logger.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewApiInternalError(err))
	}
}

// pathID parses the :id path parameter, answering 400 on garbage.
func (api *API) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewBadPathParameterError("id"))
		return uuid.Nil, false
	}
	return id, true
}

// pathName reads the :name path parameter, answering 400 when empty.
func (api *API) pathName(c *gin.Context) (string, bool) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.NewBadPathParameterError("name"))
		return "", false
	}
	return name, true
}
