// Package server exposes a local websocket feed of applied camera
// adjustments, for overlay tooling and debugging against a live game.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/camtune/camtune/internal/core/camera"
	"github.com/camtune/camtune/internal/core/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local debug tool; overlays load from file:// or localhost pages.
	CheckOrigin: func(*http.Request) bool { return true },
}

const clientBuffer = 64

type feedClient struct {
	id   string
	conn *websocket.Conn
	send chan camera.Adjustment
	once sync.Once
}

// Feed broadcasts every adjustment to all connected clients. Publishing
// never blocks the camera thread: a client that cannot keep up drops
// events.
type Feed struct {
	log     log.Log
	mu      sync.Mutex
	clients map[string]*feedClient
}

func NewFeed(logger log.Log) *Feed {
	return &Feed{
		log:     logger,
		clients: make(map[string]*feedClient),
	}
}

// Publish fans ev out to every connected client. Intended as the engine's
// adjustment sink.
func (f *Feed) Publish(ev camera.Adjustment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clients {
		select {
		case c.send <- ev:
		default:
		}
	}
}

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("feed upgrade failed", log.Err(err))
		return
	}

	client := &feedClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan camera.Adjustment, clientBuffer),
	}
	f.mu.Lock()
	f.clients[client.id] = client
	f.mu.Unlock()
	f.log.Info("feed client connected",
		log.String("client", client.id),
		log.String("remote", conn.RemoteAddr().String()))

	go f.writeLoop(client)
	go f.readLoop(client)
}

func (f *Feed) writeLoop(c *feedClient) {
	for ev := range c.send {
		if err := c.conn.WriteJSON(ev); err != nil {
			f.remove(c, err)
			return
		}
	}
}

// readLoop discards client frames; it exists to notice the peer going away.
func (f *Feed) readLoop(c *feedClient) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			f.remove(c, err)
			return
		}
	}
}

func (f *Feed) remove(c *feedClient, cause error) {
	c.once.Do(func() {
		f.mu.Lock()
		delete(f.clients, c.id)
		// Publish sends only under f.mu, so closing here cannot race it.
		close(c.send)
		f.mu.Unlock()
		_ = c.conn.Close()
		f.log.Info("feed client disconnected",
			log.String("client", c.id),
			log.Err(cause))
	})
}

// Run serves the feed on addr until ctx is done.
func (f *Feed) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/feed", f)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
