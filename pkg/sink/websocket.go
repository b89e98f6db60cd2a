package sink

import (
	"io"

	"github.com/gorilla/websocket"
)

// WriteMessage writes src to conn as a single text message.
// Connections do not support concurrent writers; callers serialize.
func WriteMessage(conn *websocket.Conn, src io.WriterTo) error {
	w, err := conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
