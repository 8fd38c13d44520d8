package domain

// ItemLootedPayload is the event payload for item.looted events
type ItemLootedPayload struct {
	PlayerID   string `json:"player_id,omitempty"`
	InstanceID string `json:"instance_id"`
	Rarity     Rarity `json:"rarity"`
	Zone       int    `json:"zone"`
	Accepted   bool   `json:"accepted"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemAddedPayload is the event payload for item.added events
type ItemAddedPayload struct {
	PlayerID   string `json:"player_id,omitempty"`
	InstanceID string `json:"instance_id"`
	Rarity     Rarity `json:"rarity"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events.
// Bulk sales publish one payload covering every item sold.
type ItemSoldPayload struct {
	PlayerID    string   `json:"player_id,omitempty"`
	InstanceIDs []string `json:"instance_ids"`
	Rarities    []Rarity `json:"rarities"`
	Gold        int      `json:"gold"`
	Timestamp   int64    `json:"timestamp"`
}

// ItemSalvagedPayload is the event payload for item.salvaged events
type ItemSalvagedPayload struct {
	PlayerID    string        `json:"player_id,omitempty"`
	InstanceIDs []string      `json:"instance_ids"`
	Yield       MaterialYield `json:"yield"`
	Timestamp   int64         `json:"timestamp"`
}

// ItemCraftedPayload is the event payload for item.crafted events
type ItemCraftedPayload struct {
	PlayerID   string        `json:"player_id,omitempty"`
	RecipeID   string        `json:"recipe_id"`
	InstanceID string        `json:"instance_id"`
	Rarity     Rarity        `json:"rarity"`
	Cost       MaterialYield `json:"cost"`
	Timestamp  int64         `json:"timestamp"`
}

// ItemUpgradedPayload is the event payload for item.upgraded events
type ItemUpgradedPayload struct {
	PlayerID   string `json:"player_id,omitempty"`
	InstanceID string `json:"instance_id"`
	Level      int    `json:"level"`
	Cost       int    `json:"cost"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemEquipPayload is shared by item.equipped and item.unequipped events
type ItemEquipPayload struct {
	PlayerID   string   `json:"player_id,omitempty"`
	MemberID   string   `json:"member_id"`
	Slot       SlotType `json:"slot"`
	InstanceID string   `json:"instance_id"`
	Displaced  string   `json:"displaced,omitempty"`
	Timestamp  int64    `json:"timestamp"`
}
