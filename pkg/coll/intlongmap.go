// Package coll provides primitive-keyed collections used by the graph
// engine for per-node and per-edge bookkeeping.
package coll

import (
	"errors"
	"fmt"
)

// Slot states for the open-addressing table. Occupancy is tracked here,
// never inferred from key or value bit patterns, so key 0 and value 0 are
// ordinary entries.
const (
	slotEmpty uint8 = iota
	slotOccupied
	slotTombstone
)

const (
	defaultCapacity = 16
	// maxCapacity caps table growth; Put fails with ErrCapacityExceeded
	// instead of growing past it.
	maxCapacity = 1 << 30
)

// ErrCapacityExceeded indicates the map cannot grow any further.
var ErrCapacityExceeded = errors.New("map capacity exceeded")

// IntLongMap maps int32 keys to int64 values using open addressing with
// linear probing. Lookups are O(1) amortized; the table doubles once the
// load factor (live entries plus tombstones) crosses 0.75.
//
// IntLongMap is not safe for concurrent mutation. A resize rewrites the
// whole backing store, so writers need external synchronization.
type IntLongMap struct {
	keys    []int32
	values  []int64
	states  []uint8
	size    int // occupied slots
	used    int // occupied plus tombstones, drives growth
	resizes uint64
}

// NewIntLongMap creates an empty map with a small default capacity.
func NewIntLongMap() *IntLongMap {
	m := &IntLongMap{}
	m.init(defaultCapacity)
	return m
}

// NewIntLongMapWithCapacity creates a map sized to hold expected entries
// without resizing.
func NewIntLongMapWithCapacity(expected int) *IntLongMap {
	capacity := defaultCapacity
	for capacity < maxCapacity && capacity-capacity/4 < expected {
		capacity *= 2
	}
	m := &IntLongMap{}
	m.init(capacity)
	return m
}

// init allocates a fresh backing store of the given power-of-two capacity.
func (m *IntLongMap) init(capacity int) {
	m.keys = make([]int32, capacity)
	m.values = make([]int64, capacity)
	m.states = make([]uint8, capacity)
	m.size = 0
	m.used = 0
}

// hash spreads key bits so that sequential keys do not cluster in the
// low-order slots.
func hash(key int32) uint32 {
	h := uint32(key) * 0x9e3779b9
	return h ^ h>>16
}

// find returns the slot index holding key, if any.
func (m *IntLongMap) find(key int32) (int, bool) {
	if len(m.states) == 0 {
		return 0, false
	}
	mask := len(m.states) - 1
	idx := int(hash(key)) & mask
	for {
		switch m.states[idx] {
		case slotEmpty:
			return 0, false
		case slotOccupied:
			if m.keys[idx] == key {
				return idx, true
			}
		}
		idx = (idx + 1) & mask
	}
}

// insert places a key known to be absent, reusing the first tombstone on
// its probe path.
func (m *IntLongMap) insert(key int32, value int64) {
	mask := len(m.states) - 1
	idx := int(hash(key)) & mask
	insertAt := -1
	for {
		st := m.states[idx]
		if st == slotEmpty {
			if insertAt < 0 {
				insertAt = idx
				m.used++
			}
			break
		}
		if st == slotTombstone && insertAt < 0 {
			insertAt = idx
		}
		idx = (idx + 1) & mask
	}
	m.keys[insertAt] = key
	m.values[insertAt] = value
	m.states[insertAt] = slotOccupied
	m.size++
}

// grow doubles the backing store and rehashes all occupied slots,
// discarding tombstones.
func (m *IntLongMap) grow() error {
	newCapacity := len(m.states) * 2
	if newCapacity > maxCapacity {
		return fmt.Errorf("grow to %d slots: %w", newCapacity, ErrCapacityExceeded)
	}

	oldKeys, oldValues, oldStates := m.keys, m.values, m.states
	m.init(newCapacity)
	for i, st := range oldStates {
		if st == slotOccupied {
			m.insert(oldKeys[i], oldValues[i])
		}
	}

	m.resizes++
	return nil
}

// Put inserts or overwrites the value for key. The map is left unchanged
// when growth fails.
func (m *IntLongMap) Put(key int32, value int64) error {
	if len(m.states) == 0 {
		m.init(defaultCapacity)
	}
	if idx, ok := m.find(key); ok {
		m.values[idx] = value
		return nil
	}
	if m.used+1 > len(m.states)-len(m.states)/4 {
		if err := m.grow(); err != nil {
			return err
		}
	}
	m.insert(key, value)
	return nil
}

// MustPut is like Put but panics when the map cannot grow. Intended for
// callers whose working set is known to fit.
func (m *IntLongMap) MustPut(key int32, value int64) {
	if err := m.Put(key, value); err != nil {
		panic(err)
	}
}

// Get returns the value stored for key, or 0 when absent. Use ContainsKey
// to tell a stored 0 apart from a missing entry.
func (m *IntLongMap) Get(key int32) int64 {
	if idx, ok := m.find(key); ok {
		return m.values[idx]
	}
	return 0
}

// ContainsKey reports whether key holds a live entry.
func (m *IntLongMap) ContainsKey(key int32) bool {
	_, ok := m.find(key)
	return ok
}

// Remove deletes the entry for key and reports whether one existed. The
// slot becomes a tombstone so probe chains through it stay intact.
func (m *IntLongMap) Remove(key int32) bool {
	idx, ok := m.find(key)
	if !ok {
		return false
	}
	m.states[idx] = slotTombstone
	m.size--
	return true
}

// Len returns the number of live entries.
func (m *IntLongMap) Len() int {
	return m.size
}

// Clear removes all entries, keeping the current capacity.
func (m *IntLongMap) Clear() {
	m.init(len(m.states))
}

// ForEach calls fn for every live entry until fn returns false. Iteration
// order is unspecified. The map must not be mutated during iteration.
func (m *IntLongMap) ForEach(fn func(key int32, value int64) bool) {
	for i, st := range m.states {
		if st == slotOccupied {
			if !fn(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// Resizes returns how many times the backing store has grown, for
// instrumentation.
func (m *IntLongMap) Resizes() uint64 {
	return m.resizes
}
