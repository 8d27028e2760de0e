package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sergeii/enigma/internal/core/entities/event"
	"github.com/sergeii/enigma/internal/core/usecases/watchsession"
	"github.com/sergeii/enigma/internal/rest/model"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10
	wsReadLimit = 512
)

var upgrader = websocket.Upgrader{ // nolint: gochecknoglobals
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// WatchSession godoc
// @Summary      Watch session
// @Description  Stream the lamps lit and the rotors advanced on the session machine over a websocket.
// @Description  The stream is closed once the session is removed
// @Tags         sessions
// @Param        id   path      string  true  "Session id"
// @Success      101  {object}  model.Event
// @Failure      404
// @Router       /sessions/{id}/events [get]
func (a *API) WatchSession(c *gin.Context) {
	id, ok := a.sessionID(c)
	if !ok {
		return
	}

	// subscribe before the handshake, so nothing published after it is missed
	stream, err := a.container.WatchSession.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, watchsession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to subscribe to session events")
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	defer stream.Close() // nolint: errcheck

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already responded
		a.logger.Debug().Err(err).Stringer("session", id).Msg("Failed to upgrade to websocket")
		return
	}
	defer conn.Close()

	a.metrics.EventStreams.Inc()
	defer a.metrics.EventStreams.Dec()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	go a.discardIncoming(conn, cancel)

	ticker := time.NewTicker(wsPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case e, open := <-stream.Events():
			if !open {
				a.closeStream(conn, websocket.CloseGoingAway, "")
				return
			}
			if err = a.writeEvent(conn, e); err != nil {
				a.logger.Debug().Err(err).Stringer("session", id).Msg("Failed to write session event")
				return
			}
			if e.Kind == event.Removed {
				a.closeStream(conn, websocket.CloseNormalClosure, "session removed")
				return
			}
		case <-ticker.C:
			if err = conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
				return
			}
			if err = conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// discardIncoming keeps reading from the client, which is required to process pongs and close frames.
// The stream is cancelled once the client goes away
func (a *API) discardIncoming(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(wsReadLimit)
	if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (a *API) writeEvent(conn *websocket.Conn, e event.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(model.NewEventFromDomain(e))
}

func (a *API) closeStream(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(wsWriteWait)); err != nil {
		a.logger.Debug().Err(err).Msg("Failed to close websocket gracefully")
	}
}
