package sse

// ItemEventPayload is the SSE payload for item lifecycle events.
// Data holds the domain payload of the bus event unchanged.
type ItemEventPayload struct {
	PlayerID string      `json:"player_id"`
	Source   string      `json:"source,omitempty"`
	Count    int         `json:"count"`
	Data     interface{} `json:"data"`
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
	PlayerID string   `json:"player_id,omitempty"`
}
