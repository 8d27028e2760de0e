package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/removesession"
)

// DeleteSession godoc
// @Summary      Delete session
// @Description  Remove the session, its event subscribers are disconnected
// @Tags         sessions
// @Param        id   path      string  true  "Session id"
// @Success      204
// @Failure      404
// @Router       /sessions/{id} [delete]
func (a *API) DeleteSession(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	if err := a.container.RemoveSession.Execute(c, id); err != nil {
		switch {
		case errors.Is(err, removesession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
