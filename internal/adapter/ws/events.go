package ws

import "encoding/json"

// Wire events. A tablet and any number of browsers speak the same
// envelope: {"event": ..., "data": {...}}.
const (
	EventRegisterClient    = "register_client"
	EventTabletStatus      = "tablet_status_update"
	EventRequestSignature  = "request_signature"
	EventShowSignaturePad  = "show_signature_pad"
	EventNoTabletAvailable = "no_tablet_available"
	EventSubmitSignature   = "submit_signature"
	EventSignatureReceived = "signature_received"
	EventSignatureTimeout  = "signature_timeout"
)

const roleTablet = "tablet"

// Envelope is an inbound message; Data stays raw until the event is known.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type registerPayload struct {
	Type string `json:"type"`
}

type submitPayload struct {
	BrowserSID string `json:"browser_sid"`
	Signature  string `json:"signature"`
}

func tabletStatus(connected bool) outbound {
	return outbound{Event: EventTabletStatus, Data: map[string]bool{"connected": connected}}
}
