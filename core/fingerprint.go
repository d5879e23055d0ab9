// SPDX-License-Identifier: MIT

package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the full persistent state of the network: entity counts, every
// connectivity list in order, list capacities, ring Full flags, atom coordinates and
// coordination. Two networks with equal fingerprints are, for every practical purpose,
// identical; TrialRing leaves it unchanged.
func (n *Network[P]) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = h.Write(buf[:])
	}
	putList := func(l *AdjacencyList) {
		put(l.Cap())
		put(l.Len())
		for _, id := range l.ids {
			put(id)
		}
	}

	put(len(n.atoms))
	put(len(n.units))
	put(len(n.rings))
	for i := range n.atoms {
		// %v prints the shortest representation that round-trips each float.
		_, _ = fmt.Fprintf(h, "%v", n.atoms[i].Coord)
		put(n.atoms[i].Coordination)
	}
	for i := range n.units {
		put(n.units[i].AtomM)
		putList(&n.units[i].AtomsX)
		putList(&n.units[i].Units)
		putList(&n.units[i].Rings)
	}
	for i := range n.rings {
		putList(&n.rings[i].Units)
		putList(&n.rings[i].Rings)
		if n.rings[i].Full {
			put(1)
		} else {
			put(0)
		}
	}

	return h.Sum64()
}
