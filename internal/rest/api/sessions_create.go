package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/usecases/createsession"
	"github.com/sergeii/enigma/internal/keysheet"
	"github.com/sergeii/enigma/internal/rest/model"
	"github.com/sergeii/enigma/pkg/enigma"
)

// CreateSession godoc
// @Summary      Create session
// @Description  Set up a new machine that keeps its state between requests
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body      model.NewSession  true  "Session name and machine settings"
// @Success      201     {object}  model.Session
// @Failure      400     {object}  Error
// @Router       /sessions [post]
func (a *API) CreateSession(c *gin.Context) {
	var req model.NewSession
	if !a.bindJSON(c, &req) {
		return
	}

	settings := enigma.DefaultSettings()
	if req.Settings != nil {
		var err error
		if settings, err = req.Settings.ToDomain(); err != nil {
			c.JSON(http.StatusBadRequest, Error{err.Error()})
			return
		}
	}

	a.createSession(c, req.Name, settings)
}

// ImportSession godoc
// @Summary      Import session
// @Description  Set up a new machine from a YAML keysheet, the sheet must be named
// @Tags         sessions
// @Accept       application/yaml
// @Produce      json
// @Success      201     {object}  model.Session
// @Failure      400     {object}  Error
// @Router       /sessions/import [post]
func (a *API) ImportSession(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{"Malformed request body"})
		return
	}

	sheet, settings, err := keysheet.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{err.Error()})
		return
	}

	a.createSession(c, sheet.Name, settings)
}

func (a *API) createSession(c *gin.Context, name string, settings enigma.Settings) {
	s, err := a.container.CreateSession.Execute(c, createsession.Request{
		Name:     name,
		Settings: settings,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidName), errors.Is(err, enigma.ErrInvalidSettings):
			c.JSON(http.StatusBadRequest, Error{err.Error()})
		default:
			a.logger.Error().Err(err).Str("name", name).Msg("Failed to create session")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	a.logger.Debug().Stringer("session", s).Msg("Created session")

	c.JSON(http.StatusCreated, model.NewSessionFromDomain(s))
}
