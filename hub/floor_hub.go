// Package hub fans floor changes out to connected host terminals over
// websockets, so every stand sees seats, waitlist moves, and roster changes
// as they happen.
package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/hostline/host-stand/floor"
)

// Event types
const (
	EventFloorUpdate    = "floor_update"
	EventWaitlistUpdate = "waitlist_update"
	EventRosterUpdate   = "roster_update"
	EventTableUpdate    = "table_update"
	EventRotationUpdate = "rotation_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// FloorHub holds every connected host terminal.
type FloorHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var floorHub = FloorHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its authenticated role.
func RegisterClient(conn *websocket.Conn, role string) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	floorHub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	delete(floorHub.clients, conn)
	conn.Close()
}

// BroadcastFloorUpdate pushes the full snapshot to every terminal.
func BroadcastFloorUpdate(snap floor.Snapshot) {
	broadcast(Message{
		Event: EventFloorUpdate,
		Data:  snap,
	})
}

// BroadcastWaitlistUpdate announces an add/remove/seat on the waitlist.
func BroadcastWaitlistUpdate(data interface{}) {
	broadcast(Message{
		Event: EventWaitlistUpdate,
		Data:  data,
	})
}

// BroadcastRosterUpdate announces roster or presence changes.
func BroadcastRosterUpdate(data interface{}) {
	broadcast(Message{
		Event: EventRosterUpdate,
		Data:  data,
	})
}

// BroadcastTableUpdate announces one table changing status.
func BroadcastTableUpdate(table floor.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  table,
	})
}

// BroadcastRotationUpdate announces score or direction changes.
func BroadcastRotationUpdate(data interface{}) {
	broadcast(Message{
		Event: EventRotationUpdate,
		Data:  data,
	})
}

// BroadcastMessage sends an arbitrary event.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling hub message: %v", err)
		return
	}

	for conn := range floorHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending hub message: %v", err)
			continue
		}
	}
}
