// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Bounded neighbour-id container used for every relation of the network.
// Determinism:
//   - Insertion order is preserved; Del compacts in place without reordering the rest.

package core

// Status reports the outcome of an Add. It is a bit set so that two-sided
// connectivity operations can combine the outcome of both directions.
type Status uint8

const (
	// StatusOK means the id was appended.
	StatusOK Status = 0

	// StatusDuplicate means the id was already present; the list is unchanged.
	StatusDuplicate Status = 1 << iota

	// StatusOverflow means the list was at capacity; the list is unchanged.
	StatusOverflow
)

// Duplicate reports whether any side saw a duplicate.
func (s Status) Duplicate() bool { return s&StatusDuplicate != 0 }

// Overflow reports whether any side was full.
func (s Status) Overflow() bool { return s&StatusOverflow != 0 }

// OK reports whether every side appended.
func (s Status) OK() bool { return s == StatusOK }

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDuplicate:
		return "duplicate"
	case StatusOverflow:
		return "overflow"
	default:
		return "duplicate|overflow"
	}
}

// AdjacencyList is a bounded list of entity ids.
//
// The backing array is allocated once with the full capacity, so Add never
// reallocates. The zero value has capacity 0 and rejects every Add.
type AdjacencyList struct {
	ids []int
}

// NewAdjacencyList returns an empty list able to hold capacity ids.
func NewAdjacencyList(capacity int) AdjacencyList {
	if capacity < 0 {
		capacity = 0
	}

	return AdjacencyList{ids: make([]int, 0, capacity)}
}

// Add appends id unless it is already present or the list is full.
//
// Complexity: O(n), n ≤ capacity.
func (l *AdjacencyList) Add(id int) Status {
	if l.Contains(id) {
		return StatusDuplicate
	}
	if len(l.ids) == cap(l.ids) {
		return StatusOverflow
	}
	l.ids = append(l.ids, id)

	return StatusOK
}

// Del removes id, shifting later entries down by one. Deleting an absent id is a no-op.
//
// Complexity: O(n).
func (l *AdjacencyList) Del(id int) {
	for i, v := range l.ids {
		if v != id {
			continue
		}
		copy(l.ids[i:], l.ids[i+1:])
		l.ids = l.ids[:len(l.ids)-1]

		return
	}
}

// Contains reports whether id is present.
func (l *AdjacencyList) Contains(id int) bool {
	for _, v := range l.ids {
		if v == id {
			return true
		}
	}

	return false
}

// IndexOf returns the position of id, or -1.
func (l *AdjacencyList) IndexOf(id int) int {
	for i, v := range l.ids {
		if v == id {
			return i
		}
	}

	return -1
}

// Len returns the number of stored ids.
func (l *AdjacencyList) Len() int { return len(l.ids) }

// Cap returns the fixed capacity.
func (l *AdjacencyList) Cap() int { return cap(l.ids) }

// At returns the id at position i. It panics if i is out of range, like a slice index.
func (l *AdjacencyList) At(i int) int { return l.ids[i] }

// IDs returns a copy of the stored ids in insertion order.
func (l *AdjacencyList) IDs() []int {
	out := make([]int, len(l.ids))
	copy(out, l.ids)

	return out
}

// Clone returns an independent list with the same capacity and contents.
func (l AdjacencyList) Clone() AdjacencyList {
	c := NewAdjacencyList(cap(l.ids))
	c.ids = append(c.ids, l.ids...)

	return c
}
