package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"library-backend/pkg/id"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// browsers and the tablet page are served from arbitrary hosts on the
	// local network
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket connection, browser or tablet alike. The role is
// decided later by a register_client event.
type Client struct {
	sid    string
	hub    *Hub
	conn   *websocket.Conn
	send   chan outbound
	closed bool // guarded by hub.mu
}

func newClient(h *Hub, conn *websocket.Conn) *Client {
	return &Client{
		sid:  id.NewID32(),
		hub:  h,
		conn: conn,
		send: make(chan outbound, sendBufferSize),
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		c.hub.handle(c, env)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for m := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(m); err != nil {
			return
		}
	}
	// hub closed the channel; tell the peer before dropping the socket
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// Handler upgrades an HTTP request into a relay connection.
func (h *Hub) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		client := newClient(h, conn)
		h.add(client)
		go client.writePump()
		go client.readPump()
		return nil
	}
}
