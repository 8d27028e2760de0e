package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/listsessions"
	"github.com/sergeii/enigma/internal/rest/model"
)

type SessionListForm struct {
	Limit int `binding:"omitempty,min=0,max=1000" form:"limit"`
}

// ListSessions godoc
// @Summary      List sessions
// @Description  List sessions, the most recently used first
// @Tags         sessions
// @Produce      json
// @Param        limit  query    int  false  "Maximum number of sessions to return"
// @Success      200 {array} model.Session
// @Router       /sessions [get]
func (a *API) ListSessions(c *gin.Context) {
	var form SessionListForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{"Invalid limit"})
		return
	}

	sessions, err := a.container.ListSessions.Execute(c, listsessions.Request{Limit: form.Limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to obtain sessions")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, model.NewSessionFromDomain(s))
	}
	c.JSON(http.StatusOK, result)
}
