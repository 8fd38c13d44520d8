package domain

import (
	"encoding/json"
	"fmt"
)

// StatKey names one of the fixed item stats
type StatKey string

const (
	StatAtk StatKey = "atk"
	StatDef StatKey = "def"
	StatHP  StatKey = "hp"
)

var statOrder = []StatKey{StatAtk, StatDef, StatHP}

// StatKeys returns every stat key in canonical order
func StatKeys() []StatKey {
	return append([]StatKey(nil), statOrder...)
}

// Valid reports whether k is a known stat key
func (k StatKey) Valid() bool {
	switch k {
	case StatAtk, StatDef, StatHP:
		return true
	default:
		return false
	}
}

// Stats is the fixed-key stat record of an item.
// A zero value means the item does not grant that stat.
type Stats struct {
	Atk int
	Def int
	HP  int
}

// StatsOf builds a single-stat record
func StatsOf(key StatKey, value int) Stats {
	var s Stats
	s.Set(key, value)
	return s
}

// Get returns the value of key (0 for unknown keys)
func (s Stats) Get(key StatKey) int {
	switch key {
	case StatAtk:
		return s.Atk
	case StatDef:
		return s.Def
	case StatHP:
		return s.HP
	default:
		return 0
	}
}

// Set assigns value to key. Unknown keys are ignored.
func (s *Stats) Set(key StatKey, value int) {
	switch key {
	case StatAtk:
		s.Atk = value
	case StatDef:
		s.Def = value
	case StatHP:
		s.HP = value
	}
}

// Total sums every stat value
func (s Stats) Total() int {
	return s.Atk + s.Def + s.HP
}

// Keys returns the keys the item actually grants, in canonical order
func (s Stats) Keys() []StatKey {
	keys := make([]StatKey, 0, len(statOrder))
	for _, k := range statOrder {
		if s.Get(k) != 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Map returns the granted stats as a key -> value mapping
func (s Stats) Map() map[StatKey]int {
	m := make(map[StatKey]int, len(statOrder))
	for _, k := range s.Keys() {
		m[k] = s.Get(k)
	}
	return m
}

// MarshalJSON encodes the granted stats as {"atk": 5, "hp": 3}
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes a stat mapping, rejecting unknown keys
func (s *Stats) UnmarshalJSON(data []byte) error {
	var m map[StatKey]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = Stats{}
	for k, v := range m {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown stat key %q", ErrInvalidInput, k)
		}
		s.Set(k, v)
	}
	return nil
}
