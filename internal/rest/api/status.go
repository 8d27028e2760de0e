package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/cmd/enigma/build"
)

// Status godoc
// @Summary      Service status
// @Description  Return the build information of the running service
// @Tags         status
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /status [get]
func (a *API) Status(c *gin.Context) {
	status := map[string]string{
		"BuildTime":    build.Time,
		"BuildCommit":  build.Commit,
		"BuildVersion": build.Version,
	}
	c.JSON(http.StatusOK, status)
}
