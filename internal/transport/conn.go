package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// sendBuffer is how many outbound frames may be queued before Send starts
// refusing.
const sendBuffer = 256

// ErrClosed is returned by Send once the connection is down.
var ErrClosed = errors.New("connection closed")

// ErrSendQueueFull is returned by Send when the outbound queue is full.
// The frame is not sent and will not be retried.
var ErrSendQueueFull = errors.New("send queue full")

// Conn is one live connection to the server. A read pump publishes every
// inbound frame to the relay; a write pump drains the send queue. When
// either side of the socket fails the whole connection tears down and the
// relay closes, so every subscriber sees the disconnect.
type Conn struct {
	ws     *websocket.Conn
	relay  *Relay
	send   chan []byte
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to a ws:// or wss:// URL and starts both pumps. The relay
// belongs to the connection from here on: it closes when the connection
// does.
func Dial(url string, relay *Relay, logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := &Conn{
		ws:     ws,
		relay:  relay,
		send:   make(chan []byte, sendBuffer),
		logger: logger.With("conn", uuid.NewString()[:8]),
		done:   make(chan struct{}),
	}
	go c.readPump()
	go c.writePump()
	c.logger.Info("connected", "url", url)
	return c, nil
}

// Send queues one frame for delivery and returns immediately. A full queue
// or a dead connection is an error; the frame is dropped either way and
// the caller decides what to tell the user.
func (c *Conn) Send(frame []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.send <- frame:
		return nil
	case <-c.done:
		return ErrClosed
	default:
		return ErrSendQueueFull
	}
}

func (c *Conn) readPump() {
	defer c.Close()
	for {
		_, frame, err := c.ws.ReadMessage()
		if err != nil {
			c.logger.Info("read pump done", "error", err)
			return
		}
		c.relay.Publish(frame)
	}
}

func (c *Conn) writePump() {
	for {
		select {
		case frame := <-c.send:
			if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Warn("write failed", "error", err)
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// Close tears the connection down: both pumps stop, the socket closes and
// the relay closes with it. Safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
		c.relay.Close()
		c.logger.Info("disconnected")
	})
	return nil
}
