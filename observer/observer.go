// Package observer streams each reconciled snapshot and its change
// summary to spectator clients over WebSocket, so a human (or a
// dashboard) can watch the agent play without touching the game loop.
package observer

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"spirebot/spire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // local supervision endpoint, not exposed
	},
}

// Frame is one spectator update.
type Frame struct {
	Seq     uint64          `json:"seq"`
	Screen  string          `json:"screen"`
	Floor   int             `json:"floor"`
	Changes []spire.Change  `json:"changes,omitempty"`
	State   *spire.Snapshot `json:"state"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Observer owns the spectator HTTP server and the connected clients.
type Observer struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	srv     *http.Server
}

func New(addr string) *Observer {
	o := &Observer{clients: make(map[*client]struct{})}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", o.handleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	o.srv = &http.Server{Addr: addr, Handler: mux}
	return o
}

// Start serves in the background. Spectators are best-effort: a failed
// listen is logged, never fatal to the session.
func (o *Observer) Start() {
	go func() {
		log.Printf("[Observer] Listening on %s", o.srv.Addr)
		if err := o.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[Observer] Server stopped: %v", err)
		}
	}()
}

func (o *Observer) Close() error {
	o.mu.Lock()
	for c := range o.clients {
		close(c.send)
		delete(o.clients, c)
	}
	o.mu.Unlock()
	return o.srv.Close()
}

func (o *Observer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Observer] Upgrade error: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 64)}
	o.mu.Lock()
	o.clients[c] = struct{}{}
	total := len(o.clients)
	o.mu.Unlock()
	log.Printf("[Observer] Spectator connected, total: %d", total)

	go c.writePump()
	go o.readPump(c)
}

// Publish fans one frame out to every spectator. Slow clients drop
// frames rather than stalling the session.
func (o *Observer) Publish(snap *spire.Snapshot, summary spire.ChangeSummary) {
	frame := Frame{
		Seq:     snap.Seq,
		Screen:  snap.ScreenKind.String(),
		Floor:   snap.Floor,
		Changes: summary.Changes,
		State:   snap,
	}
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("[Observer] Marshal error: %v", err)
		return
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	for c := range o.clients {
		select {
		case c.send <- data:
		default:
			// Drop if buffer full
		}
	}
}

func (o *Observer) readPump(c *client) {
	defer func() {
		o.mu.Lock()
		delete(o.clients, c)
		o.mu.Unlock()
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		// Spectators only listen; any inbound traffic besides pongs
		// just resets the deadline until the connection drops.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
