package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/encodetext"
	"github.com/sergeii/enigma/internal/rest/model"
	"github.com/sergeii/enigma/pkg/textprep"
)

// EncodeText godoc
// @Summary      Encode text
// @Description  Type the text on the session machine. Anything but latin letters is dropped, accented letters are typed without accents
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Session id"
// @Param        text     body      model.EncodeRequest  true  "Text to type"
// @Success      200      {object}  model.Encoded
// @Failure      400      {object}  Error
// @Failure      404
// @Failure      409
// @Router       /sessions/{id}/encode [post]
func (a *API) EncodeText(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	var req model.EncodeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	resp, err := a.container.EncodeText.Execute(c, id, encodetext.Request{Text: req.Text})
	if err != nil {
		switch {
		case errors.Is(err, encodetext.ErrNothingToEncode):
			c.JSON(http.StatusBadRequest, Error{"Text contains no letters"})
		case errors.Is(err, encodetext.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, encodetext.ErrSessionBusy):
			c.JSON(http.StatusConflict, Error{"Session is busy, try again later"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewEncodedFromDomain(resp, textprep.Group(resp.Output, req.Group)))
}
