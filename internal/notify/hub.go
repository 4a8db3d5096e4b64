package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Events pushed to admin sessions after successful mutations.
const (
	EventNewLog             = "new_log"
	EventUserDeleted        = "user_deleted"
	EventUserUpdated        = "user_updated"
	EventEvaluationDeleted  = "evaluation_deleted"
	EventAdminStatusUpdated = "admin_status_updated"
	EventProductsUpdated    = "products_updated"
)

// streamEventName is the SSE event name the admin panel listens on
const streamEventName = "admin-update"

type Publisher interface {
	Publish(event string, data any)
}

type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub fans messages out to in-process subscribers. Publish never blocks:
// a subscriber whose buffer is full misses the message.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan Message]struct{}
	buffer int
	log    *zap.Logger
}

func NewHub(buffer int, log *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[chan Message]struct{}),
		buffer: buffer,
		log:    log.With(zap.String("component", "notify_hub")),
	}
}

func (h *Hub) Publish(event string, data any) {
	h.Deliver(Message{Event: event, Data: data})
}

// Deliver hands msg to every current subscriber.
func (h *Hub) Deliver(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
			h.log.Warn("Dropping event for slow subscriber", zap.String("event", msg.Event))
		}
	}
}

// Subscribe registers a new listener. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, h.buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// ServeHTTP streams messages to the client as Server-Sent Events until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	messages, unsubscribe := h.Subscribe()
	defer unsubscribe()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case msg, ok := <-messages:
			if !ok {
				return
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				h.log.Error("Failed to encode event", zap.Error(err), zap.String("event", msg.Event))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", streamEventName, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
