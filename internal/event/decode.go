package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process events already carry
// the typed struct; payloads read back from a dead-letter file are generic
// maps and go through a JSON round trip.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}
