package domain

import "time"

// SaveSchemaVersion is bumped when SaveData changes shape
const SaveSchemaVersion = "1"

// SaveData is everything persisted for one player between sessions
type SaveData struct {
	SchemaVersion string            `json:"schema_version"`
	PlayerID      string            `json:"player_id"`
	Zone          int               `json:"zone"`
	Gold          int               `json:"gold"`
	Materials     MaterialYield     `json:"materials,omitempty"`
	Inventory     InventorySnapshot `json:"inventory"`
	Party         []Member          `json:"party"`
	SavedAt       time.Time         `json:"saved_at"`
}
