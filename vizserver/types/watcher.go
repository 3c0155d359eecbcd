package types

import (
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is one connected viz websocket client.
type Watcher struct {
	id   uuid.UUID
	conn *websocket.Conn
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4(),
		conn: conn,
	}
}

func (watcher *Watcher) GetId() string {
	return watcher.id.String()
}
