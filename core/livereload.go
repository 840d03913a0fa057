package core

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// reloadMessage is the payload the dev-mode client script listens for.
const reloadMessage = "reload"

type LiveReloaderInterface interface {
	BroadcastReload()
	ClientCount() int
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader tracks the browsers connected to the dev-mode reload
// endpoint and pushes a reload message whenever the watcher fires.
type LiveReloader struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = struct{}{}
	lr.mu.Unlock()

	go lr.drain(conn)
}

// drain discards client frames until the connection dies, then drops it.
func (lr *LiveReloader) drain(conn *websocket.Conn) {
	defer func() {
		lr.mu.Lock()
		delete(lr.clients, conn)
		lr.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (lr *LiveReloader) BroadcastReload() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.clients {
		conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			conn.Close()
			delete(lr.clients, conn)
		}
	}
}

func (lr *LiveReloader) ClientCount() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return len(lr.clients)
}
