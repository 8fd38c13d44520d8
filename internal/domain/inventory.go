package domain

// InventorySnapshot is the persisted form of an inventory: the item list and
// the catalog version it was produced against.
type InventorySnapshot struct {
	CatalogVersion string `json:"catalog_version"`
	Items          []Item `json:"items"`
	LastUpdate     int64  `json:"last_update,omitempty"`
}
