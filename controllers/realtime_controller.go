package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nishantjoshi-007/NutriScan/services"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /ws — carries non-blocking app notices (e.g. best-effort storage
// failures) to the client.
func (rc *RealtimeController) NoticesWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Conn: conn}
	rc.hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Write(websocket.PingMessage, nil); err != nil {
				rc.hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.hub.Unregister(cl)
			return
		}
	}
}
