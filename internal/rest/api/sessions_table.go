package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/gettable"
	"github.com/sergeii/enigma/internal/rest/model"
)

// ViewTable godoc
// @Summary      View lamp table
// @Description  Return the lamp every key would light in the current machine state, the machine is not stepped
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  model.Table
// @Failure      404
// @Router       /sessions/{id}/table [get]
func (a *API) ViewTable(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	resp, err := a.container.GetTable.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, gettable.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to compute lamp table")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewTableFromDomain(resp))
}
