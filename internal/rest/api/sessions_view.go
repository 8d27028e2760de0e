package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/internal/rest/model"
)

// ViewSession godoc
// @Summary      View session
// @Description  Return the session with the current state of its machine
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  model.Session
// @Failure      404
// @Router       /sessions/{id} [get]
func (a *API) ViewSession(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	s, err := a.container.GetSession.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, getsession.ErrSessionNotFound):
			a.logger.Debug().Stringer("session", id).Msg("Requested session not found")
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to obtain session")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSessionFromDomain(s))
}

// ExportSession godoc
// @Summary      Export session
// @Description  Return the current machine setting of the session as a YAML keysheet
// @Tags         sessions
// @Produce      application/yaml
// @Param        id   path      string  true  "Session id"
// @Success      200
// @Failure      404
// @Router       /sessions/{id}/keysheet [get]
func (a *API) ExportSession(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	s, err := a.container.GetSession.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, getsession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to obtain session")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	sheet, err := keysheet.Marshal(s.Name, s.Settings)
	if err != nil {
		a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to render keysheet")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/yaml; charset=utf-8", sheet)
}
