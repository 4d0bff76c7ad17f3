package server

import (
	"net/http"
	"sync"
	"time"

	"market-streamer/src/helpers"
	"market-streamer/src/streaming"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096 // subscription messages are small
)

// -----------------------------------------------------------------------------
// Client Structure
// -----------------------------------------------------------------------------

// Client is one live websocket connection. It implements
// interfaces.IStreamPusher: streaming tasks push through the buffered send
// channel, the writePump drains it onto the wire.
type Client struct {
	server *FastAPIServer
	conn   *websocket.Conn
	handle streaming.ConnectionHandle

	send      chan interface{}
	closed    chan struct{}
	closeOnce sync.Once
}

// -----------------------------------------------------------------------------

// Push delivers one event to the client. Fails permanently once the
// connection is gone; callers must treat the error as fatal for their stream.
func (c *Client) Push(event interface{}) error {
	select {
	case <-c.closed:
		return helpers.NewDeliveryError("connection closed", nil)
	default:
	}

	select {
	case c.send <- event:
		return nil
	case <-c.closed:
		return helpers.NewDeliveryError("connection closed", nil)
	}
}

// -----------------------------------------------------------------------------

// markClosed makes every pending and future Push fail.
func (c *Client) markClosed() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// -----------------------------------------------------------------------------
// readPump - handles incoming messages from client
// Acts as the watchdog for the connection
// -----------------------------------------------------------------------------

func (c *Client) readPump() {
	defer func() {
		// Registry cleanup is what terminates this connection's tasks.
		c.server.Manager.Disconnect(c.handle.ID)
		c.markClosed()
		c.conn.Close()
		c.server.Logger.Info("Client disconnected: %s", c.handle.ID)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.Logger.Info("WebSocket error: %v", err)
			}
			break
		}
		// Handle the message (subscribe/unsubscribe commands)
		c.server.HandleClientMessage(c, message)
	}
}

// -----------------------------------------------------------------------------
// writePump - sends messages to client
// -----------------------------------------------------------------------------

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.markClosed()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// Write JSON message
			if err := c.conn.WriteJSON(message); err != nil {
				c.server.Logger.Info("Write error: %v", err)
				return
			}

		case <-c.closed:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handler
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		server: s,
		conn:   conn,
		// Buffered channel so streaming tasks rarely block on push
		send:   make(chan interface{}, 256),
		closed: make(chan struct{}),
	}

	// Register with an empty subscription set
	client.handle = s.Manager.Connect(client)

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}
