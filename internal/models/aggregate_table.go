package models

import (
	"iter"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

const minTableCapacity = 64

type tableSlot struct {
	hash        uint64
	key         string
	measurement Measurement
	used        bool
}

// AggregateTable maps keys to their Measurement.
//
// It is an open-addressing table with linear probing keyed by the xxh3 hash of
// the raw key bytes, so looking up a key held in a []byte does not allocate.
// Keys are copied on insertion and compared byte-wise. The load factor stays
// at or below one half.
//
// An AggregateTable is not safe for concurrent use; each worker owns its own
// and hands it over only once it has finished writing to it.
type AggregateTable struct {
	slots []tableSlot
	mask  uint64
	size  int
}

// NewAggregateTable returns an empty table sized to hold about capacityHint
// keys without growing.
func NewAggregateTable(capacityHint int) *AggregateTable {
	capacity := minTableCapacity
	for capacity < capacityHint*2 {
		capacity <<= 1
	}
	return &AggregateTable{
		slots: make([]tableSlot, capacity),
		mask:  uint64(capacity - 1),
	}
}

// Update records one observation for key. The key is copied only the first
// time it is seen, so callers may pass a slice of a shared buffer.
func (t *AggregateTable) Update(key []byte, value FixedPoint) {
	hash := xxh3.Hash(key)
	slot := probe(t.slots, t.mask, hash, key)
	if slot.used {
		slot.measurement.Update(value)
		return
	}
	if t.growIfNeeded() {
		slot = probe(t.slots, t.mask, hash, key)
	}
	*slot = tableSlot{hash: hash, key: string(key), measurement: NewMeasurement(value), used: true}
	t.size++
}

// Merge folds a partial aggregate of key into the table.
func (t *AggregateTable) Merge(key string, m Measurement) {
	hash := xxh3.HashString(key)
	slot := probe(t.slots, t.mask, hash, key)
	if slot.used {
		slot.measurement.Merge(m)
		return
	}
	if t.growIfNeeded() {
		slot = probe(t.slots, t.mask, hash, key)
	}
	*slot = tableSlot{hash: hash, key: key, measurement: m, used: true}
	t.size++
}

// Get returns the aggregate of key, if the key has been observed.
func (t *AggregateTable) Get(key string) (Measurement, bool) {
	slot := probe(t.slots, t.mask, xxh3.HashString(key), key)
	if !slot.used {
		return Measurement{}, false
	}
	return slot.measurement, true
}

// Len returns the number of distinct keys.
func (t *AggregateTable) Len() int {
	return t.size
}

// All iterates over every key and its aggregate in unspecified order.
func (t *AggregateTable) All() iter.Seq2[string, Measurement] {
	return func(yield func(string, Measurement) bool) {
		for i := range t.slots {
			slot := &t.slots[i]
			if !slot.used {
				continue
			}
			if !yield(slot.key, slot.measurement) {
				return
			}
		}
	}
}

// Keys returns the distinct keys sorted by byte-wise comparison.
func (t *AggregateTable) Keys() []string {
	keys := make([]string, 0, t.size)
	for key := range t.All() {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// growIfNeeded doubles the slot array when one more key would push the load
// factor past one half. It reports whether slots moved.
func (t *AggregateTable) growIfNeeded() bool {
	if (t.size+1)*2 <= len(t.slots) {
		return false
	}
	slots := make([]tableSlot, len(t.slots)*2)
	mask := uint64(len(slots) - 1)
	for i := range t.slots {
		old := &t.slots[i]
		if !old.used {
			continue
		}
		idx := old.hash & mask
		for slots[idx].used {
			idx = (idx + 1) & mask
		}
		slots[idx] = *old
	}
	t.slots = slots
	t.mask = mask
	return true
}

// probe returns the slot holding key, or the empty slot where it belongs.
// The table always has a free slot, so the loop terminates.
func probe[K []byte | string](slots []tableSlot, mask uint64, hash uint64, key K) *tableSlot {
	for idx := hash & mask; ; idx = (idx + 1) & mask {
		slot := &slots[idx]
		if !slot.used || (slot.hash == hash && slot.key == string(key)) {
			return slot
		}
	}
}
