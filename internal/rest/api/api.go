package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/metrics"
)

type API struct {
	container container.Container
	validate  *validator.Validate
	metrics   *metrics.Collector
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	container container.Container,
	validate *validator.Validate,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) *API {
	return &API{
		container: container,
		validate:  validate,
		metrics:   metrics,
		logger:    logger,
	}
}

func (a *API) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{"Invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body into req and validates it,
// a bad request is responded to right away
func (a *API) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, Error{"Malformed request body"})
		return false
	}
	if err := a.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.JSON(http.StatusBadRequest, Error{"Invalid value for " + verrs[0].Namespace()})
			return false
		}
		c.JSON(http.StatusBadRequest, Error{"Invalid request"})
		return false
	}
	return true
}
