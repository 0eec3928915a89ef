package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// FrameType identifies a server to browser frame.
type FrameType string

const (
	FrameSnapshot    FrameType = "snapshot"
	FrameAppend      FrameType = "append"
	FrameRemove      FrameType = "remove"
	FrameClassAdd    FrameType = "class-add"
	FrameClassRemove FrameType = "class-remove"
)

// Element keys used in frames for elements that carry no toast id.
const (
	KeyBody    = "body"
	KeySurface = "surface"
)

// Frame is sent to browsers via WebSocket.
type Frame struct {
	Type   FrameType `json:"type"`
	Target string    `json:"target,omitempty"`
	Parent string    `json:"parent,omitempty"`
	HTML   string    `json:"html,omitempty"`
	Class  string    `json:"class,omitempty"`
}

// ClientMessage is sent by browsers to report DOM events.
type ClientMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// clientEvents lists the event types browsers may forward.
var clientEvents = map[string]bool{
	dom.EventAnimationEnd: true,
	dom.EventClick:        true,
}

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub manages WebSocket connections mirroring one document.
type Hub struct {
	doc      *dom.Document
	renderer *render.Renderer
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]bool
	stop    func()
}

// NewHub creates a hub and starts observing doc.
func NewHub(doc *dom.Document, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		doc:      doc,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   logger.With("component", "hub"),
		clients:  make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	h.stop = doc.Observe(h.onMutation)
	return h
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// The upgrader has already written the HTTP error response.
		h.logger.Debug("websocket upgrade failed", "error", errors.New("E203").Wrap(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	// The snapshot is queued under the lock so every later broadcast
	// follows it.
	h.mu.Lock()
	h.clients[c] = true
	if data, err := json.Marshal(h.snapshot()); err == nil {
		c.send <- data
	}
	h.mu.Unlock()
	h.logger.Debug("client connected", "clients", h.ClientCount())

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("invalid client message", "error", err)
			continue
		}
		h.dispatch(msg)
	}
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			c.conn.Close()
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

// dispatch delivers a browser event to the toast element it names.
func (h *Hub) dispatch(msg ClientMessage) {
	if !clientEvents[msg.Type] || msg.ID == "" {
		return
	}
	el := h.doc.ByData(toast.DataID, msg.ID)
	if el == nil {
		return
	}
	el.Dispatch(dom.Event{Type: msg.Type, Detail: map[string]any{"source": "client"}})
}

func (h *Hub) snapshot() Frame {
	f := Frame{Type: FrameSnapshot, Target: KeySurface}
	if surface := h.doc.QueryClass(toast.ContainerClass); surface != nil {
		if html, err := h.renderer.RenderToString(surface.Snapshot()); err == nil {
			f.HTML = html
		}
	}
	return f
}

func (h *Hub) onMutation(m dom.Mutation) {
	f := Frame{Target: h.key(m.Target)}
	switch m.Kind {
	case dom.MutationAppend:
		html, err := h.renderer.RenderToString(m.Target.Snapshot())
		if err != nil {
			return
		}
		f.Type = FrameAppend
		f.Parent = h.key(m.Parent)
		f.HTML = html
	case dom.MutationRemove:
		f.Type = FrameRemove
	case dom.MutationClassAdd:
		f.Type = FrameClassAdd
		f.Class = m.Class
	case dom.MutationClassRemove:
		f.Type = FrameClassRemove
		f.Class = m.Class
	default:
		return
	}
	if f.Target == "" {
		return
	}
	h.broadcast(f)
}

// key names an element for the browser.
func (h *Hub) key(el *dom.Element) string {
	if el == nil {
		return ""
	}
	if el == h.doc.Body() {
		return KeyBody
	}
	if id, ok := el.Attr("data-" + toast.DataID); ok {
		return id
	}
	if el.ClassList().Contains(toast.ContainerClass) {
		return KeySurface
	}
	return ""
}

// broadcast queues a frame for every client. Clients whose queue is full
// are dropped. Sends happen under the read lock so no channel is closed
// mid-send.
func (h *Hub) broadcast(f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow client")
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.close()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close stops observing the document and closes all client connections.
func (h *Hub) Close() {
	h.stop()

	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]bool)
	h.mu.Unlock()

	for c := range clients {
		c.close()
	}
}
