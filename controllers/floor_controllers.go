package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/hub"
	"github.com/hostline/host-stand/utils"
)

type FloorController struct {
	Floor *floor.Floor
}

func NewFloorController(fl *floor.Floor) *FloorController {
	return &FloorController{Floor: fl}
}

// GetFloor returns the full floor snapshot: waitlist, roster, tables,
// rotation, scores.
func (fc *FloorController) GetFloor(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Floor snapshot", fc.Floor.Snapshot())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FloorWS upgrades a host terminal to a websocket and streams floor events
// until it disconnects. Authentication happened in the ws middleware.
func (fc *FloorController) FloorWS(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleInterface.(string)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	// First frame: the current snapshot, so a reconnecting terminal does not
	// wait for the next mutation. Sent before registering, while this is
	// still the only writer on the connection.
	_ = ws.WriteJSON(hub.Message{Event: hub.EventFloorUpdate, Data: fc.Floor.Snapshot()})

	hub.RegisterClient(ws, role)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	hub.UnregisterClient(ws)
}
