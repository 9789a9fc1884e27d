package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT  *services.RealtimeHub
	Rem *services.ReminderService
}

func NewRealtimeController(rt *services.RealtimeHub, rem *services.ReminderService) *RealtimeController {
	return &RealtimeController{RT: rt, Rem: rem}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// RemindersWS streams fired reminders and consumption toggles to the client.
// On connect the client gets a snapshot of what is still due today, so a
// fresh tab starts in sync without waiting for the next tick.
func (rc *RealtimeController) RemindersWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	if pending, err := rc.Rem.PendingToday(uid, time.Now()); err == nil {
		snapshot, _ := json.Marshal(map[string]any{
			"kind":    "reminder.snapshot",
			"pending": pending,
		})
		_ = conn.WriteMessage(websocket.TextMessage, snapshot)
	}

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
