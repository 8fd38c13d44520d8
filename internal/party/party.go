// Package party is the in-memory party store: character records and their
// equipment slots.
package party

import (
	"sort"
	"sync"

	"github.com/osse101/lootforge/internal/domain"
)

// Store owns party members. Reads return copies; only SetEquipment
// changes a slot.
type Store struct {
	mu      sync.RWMutex
	members map[string]*domain.Member
	order   []string
}

// NewStore creates a store seeded with members
func NewStore(members ...domain.Member) *Store {
	s := &Store{members: make(map[string]*domain.Member)}
	for _, m := range members {
		s.AddMember(m)
	}
	return s
}

// DefaultParty is the starting roster of a new player
func DefaultParty() []domain.Member {
	return []domain.Member{
		{ID: "warrior", Name: "Warrior"},
		{ID: "ranger", Name: "Ranger"},
		{ID: "mage", Name: "Mage"},
	}
}

// AddMember inserts or replaces a member
func (s *Store) AddMember(m domain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.members[m.ID]; !exists {
		s.order = append(s.order, m.ID)
	}
	s.members[m.ID] = cloneMember(&m)
}

// Member looks up a member by id
func (s *Store) Member(id string) (*domain.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return nil, false
	}
	return cloneMember(m), true
}

// SetEquipment writes item into slot; nil empties the slot
func (s *Store) SetEquipment(memberID string, slot domain.SlotType, item *domain.Item) error {
	if !slot.Valid() {
		return domain.ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok {
		return domain.ErrMemberNotFound
	}
	if item == nil {
		delete(m.Equipment, slot)
		return nil
	}
	if m.Equipment == nil {
		m.Equipment = make(map[domain.SlotType]*domain.Item)
	}
	m.Equipment[slot] = item.Clone()
	return nil
}

// Members returns every member in insertion order
func (s *Store) Members() []domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Member, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *cloneMember(s.members[id]))
	}
	return out
}

// EquippedIDs returns every equipped instance id, sorted
func (s *Store) EquippedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for _, m := range s.members {
		for _, it := range m.Equipment {
			if it != nil {
				ids = append(ids, it.InstanceID)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

func cloneMember(m *domain.Member) *domain.Member {
	c := &domain.Member{ID: m.ID, Name: m.Name, Equipment: make(map[domain.SlotType]*domain.Item, len(m.Equipment))}
	for slot, it := range m.Equipment {
		if it != nil {
			c.Equipment[slot] = it.Clone()
		}
	}
	return c
}
