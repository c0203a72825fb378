package ws

import (
	"encoding/json"
	"testing"
	"time"

	"library-backend/pkg/id"
)

func testClient(h *Hub) *Client {
	c := &Client{sid: id.NewID32(), hub: h, send: make(chan outbound, sendBufferSize)}
	h.add(c)
	return c
}

func recv(t *testing.T, c *Client) outbound {
	t.Helper()
	select {
	case m := <-c.send:
		return m
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return outbound{}
	}
}

func assertNoMessage(t *testing.T, c *Client) {
	t.Helper()
	select {
	case m := <-c.send:
		t.Fatalf("unexpected message %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func statusConnected(t *testing.T, m outbound) bool {
	t.Helper()
	if m.Event != EventTabletStatus {
		t.Fatalf("got event %q, want %q", m.Event, EventTabletStatus)
	}
	data, ok := m.Data.(map[string]bool)
	if !ok {
		t.Fatalf("unexpected status payload %T", m.Data)
	}
	return data["connected"]
}

func register(h *Hub, c *Client, role string) {
	raw, _ := json.Marshal(registerPayload{Type: role})
	h.handle(c, Envelope{Event: EventRegisterClient, Data: raw})
}

func TestConnect_ReceivesPairingStatus(t *testing.T) {
	h := NewHub(0)
	c := testClient(h)
	if statusConnected(t, recv(t, c)) {
		t.Error("fresh hub should report no tablet")
	}
}

func TestRegisterTablet_BroadcastsToEveryone(t *testing.T) {
	h := NewHub(0)
	browser := testClient(h)
	tablet := testClient(h)
	recv(t, browser) // initial status
	recv(t, tablet)

	register(h, tablet, roleTablet)

	if !statusConnected(t, recv(t, browser)) {
		t.Error("browser should learn the tablet is paired")
	}
	if !statusConnected(t, recv(t, tablet)) {
		t.Error("tablet should receive the broadcast too")
	}
	if !h.TabletConnected() {
		t.Error("hub should report a paired tablet")
	}
}

func TestRegisterBrowser_IsSilent(t *testing.T) {
	h := NewHub(0)
	c := testClient(h)
	recv(t, c)
	register(h, c, "browser")
	assertNoMessage(t, c)
	if h.TabletConnected() {
		t.Error("browser registration must not claim the tablet slot")
	}
}

func TestRequestSignature_RoundTrip(t *testing.T) {
	h := NewHub(0)
	browser := testClient(h)
	other := testClient(h)
	tablet := testClient(h)
	recv(t, browser)
	recv(t, other)
	recv(t, tablet)

	register(h, tablet, roleTablet)
	recv(t, browser)
	recv(t, other)
	recv(t, tablet)

	h.handle(browser, Envelope{Event: EventRequestSignature, Data: json.RawMessage(`{"reader":"123"}`)})

	fwd := recv(t, tablet)
	if fwd.Event != EventShowSignaturePad {
		t.Fatalf("tablet got %q, want %q", fwd.Event, EventShowSignaturePad)
	}
	payload := fwd.Data.(map[string]any)
	if payload["reader"] != "123" {
		t.Errorf("original payload not forwarded: %+v", payload)
	}
	sid, _ := payload["browser_sid"].(string)
	if sid != browser.sid {
		t.Fatalf("forwarded browser_sid = %q, want %q", sid, browser.sid)
	}
	assertNoMessage(t, other)

	raw, _ := json.Marshal(submitPayload{BrowserSID: sid, Signature: "data:image/png;base64,AAAA"})
	h.handle(tablet, Envelope{Event: EventSubmitSignature, Data: raw})

	res := recv(t, browser)
	if res.Event != EventSignatureReceived {
		t.Fatalf("browser got %q, want %q", res.Event, EventSignatureReceived)
	}
	if res.Data.(map[string]string)["signature"] != "data:image/png;base64,AAAA" {
		t.Errorf("signature payload mangled: %+v", res.Data)
	}
	assertNoMessage(t, other)
}

func TestRequestSignature_NoTablet(t *testing.T) {
	h := NewHub(0)
	browser := testClient(h)
	other := testClient(h)
	recv(t, browser)
	recv(t, other)

	h.handle(browser, Envelope{Event: EventRequestSignature, Data: json.RawMessage(`{}`)})

	if m := recv(t, browser); m.Event != EventNoTabletAvailable {
		t.Fatalf("got %q, want %q", m.Event, EventNoTabletAvailable)
	}
	assertNoMessage(t, other)
}

func TestSubmitSignature_GoneBrowserIsDropped(t *testing.T) {
	h := NewHub(0)
	tablet := testClient(h)
	recv(t, tablet)
	register(h, tablet, roleTablet)
	recv(t, tablet)

	raw, _ := json.Marshal(submitPayload{BrowserSID: "deadbeef", Signature: "x"})
	h.handle(tablet, Envelope{Event: EventSubmitSignature, Data: raw})
	assertNoMessage(t, tablet)
}

func TestTabletDisconnect_ClearsPairingAndBroadcasts(t *testing.T) {
	h := NewHub(0)
	browser := testClient(h)
	tablet := testClient(h)
	recv(t, browser)
	recv(t, tablet)
	register(h, tablet, roleTablet)
	recv(t, browser)
	recv(t, tablet)

	h.remove(tablet)

	if statusConnected(t, recv(t, browser)) {
		t.Error("browser should learn the tablet is gone")
	}
	if h.TabletConnected() {
		t.Error("pairing should be cleared")
	}
}

func TestBrowserDisconnect_IsSilent(t *testing.T) {
	h := NewHub(0)
	browser := testClient(h)
	other := testClient(h)
	recv(t, browser)
	recv(t, other)

	h.remove(browser)
	assertNoMessage(t, other)
}

func TestNewTabletReplacesOldSilently(t *testing.T) {
	h := NewHub(0)
	first := testClient(h)
	second := testClient(h)
	browser := testClient(h)
	recv(t, first)
	recv(t, second)
	recv(t, browser)

	register(h, first, roleTablet)
	recv(t, first)
	recv(t, second)
	recv(t, browser)

	register(h, second, roleTablet)
	recv(t, first)
	recv(t, second)
	recv(t, browser)

	h.handle(browser, Envelope{Event: EventRequestSignature, Data: json.RawMessage(`{}`)})
	if m := recv(t, second); m.Event != EventShowSignaturePad {
		t.Fatalf("new tablet got %q, want %q", m.Event, EventShowSignaturePad)
	}
	assertNoMessage(t, first)
}

func TestRequestTimeout_NotifiesBrowser(t *testing.T) {
	h := NewHub(20 * time.Millisecond)
	browser := testClient(h)
	tablet := testClient(h)
	recv(t, browser)
	recv(t, tablet)
	register(h, tablet, roleTablet)
	recv(t, browser)
	recv(t, tablet)

	h.handle(browser, Envelope{Event: EventRequestSignature, Data: json.RawMessage(`{}`)})
	recv(t, tablet) // show_signature_pad

	if m := recv(t, browser); m.Event != EventSignatureTimeout {
		t.Fatalf("got %q, want %q", m.Event, EventSignatureTimeout)
	}
}

func TestSubmitCancelsTimeout(t *testing.T) {
	h := NewHub(40 * time.Millisecond)
	browser := testClient(h)
	tablet := testClient(h)
	recv(t, browser)
	recv(t, tablet)
	register(h, tablet, roleTablet)
	recv(t, browser)
	recv(t, tablet)

	h.handle(browser, Envelope{Event: EventRequestSignature, Data: json.RawMessage(`{}`)})
	fwd := recv(t, tablet)
	sid := fwd.Data.(map[string]any)["browser_sid"].(string)

	raw, _ := json.Marshal(submitPayload{BrowserSID: sid, Signature: "sig"})
	h.handle(tablet, Envelope{Event: EventSubmitSignature, Data: raw})
	if m := recv(t, browser); m.Event != EventSignatureReceived {
		t.Fatalf("got %q, want %q", m.Event, EventSignatureReceived)
	}

	time.Sleep(80 * time.Millisecond)
	assertNoMessage(t, browser)
}
