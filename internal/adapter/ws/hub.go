// Package ws is the signature relay: a volatile hub pairing at most one
// tablet with any number of browsers. Nothing here is persisted; an
// in-flight request dies with either endpoint. The relay deliberately has
// no queueing and no retry — concurrent requests from several browsers
// reach the tablet interleaved, and serializing them is the tablet UI's
// job, not the hub's.
package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

type Hub struct {
	mu        sync.Mutex
	clients   map[string]*Client
	tabletSID string
	// pending holds one timeout timer per requesting browser; zero
	// requestTimeout disables the timers and a browser waits until the
	// tablet answers or either side disconnects.
	pending        map[string]*time.Timer
	requestTimeout time.Duration
}

func NewHub(requestTimeout time.Duration) *Hub {
	return &Hub{
		clients:        make(map[string]*Client),
		pending:        make(map[string]*time.Timer),
		requestTimeout: requestTimeout,
	}
}

// TabletConnected reports whether a tablet is currently paired.
func (h *Hub) TabletConnected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tabletSID != ""
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.sid] = c
	// every new connection immediately learns the current pairing status
	h.sendLocked(c, tabletStatus(h.tabletSID != ""))
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.sid]; !ok {
		return
	}
	delete(h.clients, c.sid)
	h.closeLocked(c)
	if t, ok := h.pending[c.sid]; ok {
		t.Stop()
		delete(h.pending, c.sid)
	}
	// only a tablet disconnect is announced; browsers leave silently
	if h.tabletSID == c.sid {
		h.tabletSID = ""
		h.broadcastLocked(tabletStatus(false))
	}
}

func (h *Hub) handle(c *Client, env Envelope) {
	switch env.Event {
	case EventRegisterClient:
		h.handleRegister(c, env.Data)
	case EventRequestSignature:
		h.handleRequest(c, env.Data)
	case EventSubmitSignature:
		h.handleSubmit(env.Data)
	default:
		log.Printf("ws: unknown event %q from %s", env.Event, c.sid)
	}
}

func (h *Hub) handleRegister(c *Client, raw json.RawMessage) {
	var p registerPayload
	_ = json.Unmarshal(raw, &p)
	if p.Type != roleTablet {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	// a new tablet silently replaces the previous pairing
	h.tabletSID = c.sid
	h.broadcastLocked(tabletStatus(true))
}

func (h *Hub) handleRequest(c *Client, raw json.RawMessage) {
	payload := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	tablet := h.clients[h.tabletSID]
	if tablet == nil {
		// no queueing for later delivery: the requester is told right away
		h.sendLocked(c, outbound{Event: EventNoTabletAvailable})
		return
	}
	// the browser's own id rides along so the result can find its way back
	payload["browser_sid"] = c.sid
	h.sendLocked(tablet, outbound{Event: EventShowSignaturePad, Data: payload})
	h.armTimeoutLocked(c.sid)
}

func (h *Hub) handleSubmit(raw json.RawMessage) {
	var p submitPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.BrowserSID == "" {
		log.Print("ws: signature submitted without a browser_sid, dropping")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.pending[p.BrowserSID]; ok {
		t.Stop()
		delete(h.pending, p.BrowserSID)
	}
	browser := h.clients[p.BrowserSID]
	if browser == nil {
		// the originating browser left mid-flight; drop silently
		return
	}
	h.sendLocked(browser, outbound{
		Event: EventSignatureReceived,
		Data:  map[string]string{"signature": p.Signature},
	})
}

func (h *Hub) armTimeoutLocked(browserSID string) {
	if h.requestTimeout <= 0 {
		return
	}
	if t, ok := h.pending[browserSID]; ok {
		t.Stop()
	}
	h.pending[browserSID] = time.AfterFunc(h.requestTimeout, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.pending, browserSID)
		if b := h.clients[browserSID]; b != nil {
			h.sendLocked(b, outbound{Event: EventSignatureTimeout})
		}
	})
}

func (h *Hub) broadcastLocked(m outbound) {
	for _, c := range h.clients {
		h.sendLocked(c, m)
	}
}

// sendLocked never blocks: a client whose send buffer is full is dropped
// instead of stalling the hub. Callers must hold h.mu.
func (h *Hub) sendLocked(c *Client, m outbound) {
	if c.closed {
		return
	}
	select {
	case c.send <- m:
	default:
		log.Printf("ws: client %s not draining, closing", c.sid)
		h.closeLocked(c)
	}
}

func (h *Hub) closeLocked(c *Client) {
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
