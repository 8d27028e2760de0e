package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/usecases/configuresession"
	"github.com/sergeii/enigma/internal/rest/model"
	"github.com/sergeii/enigma/pkg/enigma"
)

// UpdateSession godoc
// @Summary      Configure session
// @Description  Rename the session or set its machine up anew. The settings replace the current ones as a whole
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Session id"
// @Param        session  body      model.UpdateSession  true  "Changes to apply"
// @Success      200      {object}  model.Session
// @Failure      400      {object}  Error
// @Failure      404
// @Failure      409
// @Router       /sessions/{id} [patch]
func (a *API) UpdateSession(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	var req model.UpdateSession
	if !a.bindJSON(c, &req) {
		return
	}

	ucRequest := configuresession.Request{Name: req.Name}
	if req.Settings != nil {
		settings, err := req.Settings.ToDomain()
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{err.Error()})
			return
		}
		ucRequest.Settings = &settings
	}

	s, err := a.container.ConfigureSession.Execute(c, id, ucRequest)
	if err != nil {
		switch {
		case errors.Is(err, configuresession.ErrNothingToConfigure):
			c.JSON(http.StatusBadRequest, Error{"Nothing to configure"})
		case errors.Is(err, session.ErrInvalidName), errors.Is(err, enigma.ErrInvalidSettings):
			c.JSON(http.StatusBadRequest, Error{err.Error()})
		case errors.Is(err, configuresession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, configuresession.ErrSessionBusy):
			c.JSON(http.StatusConflict, Error{"Session is busy, try again later"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSessionFromDomain(s))
}
