package domain

// Member is a party character record with its equipment slots.
// A missing key or nil value means the slot is empty.
type Member struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Equipment map[SlotType]*Item `json:"equipment"`
}

// Equipped returns the occupant of slot, or nil when empty
func (m *Member) Equipped(slot SlotType) *Item {
	if m == nil || m.Equipment == nil {
		return nil
	}
	return m.Equipment[slot]
}
