package fptree

import (
	log "github.com/sirupsen/logrus"
)

// Emit receives one frequent itemset and its support. The items slice
// is reused by the miner; implementations must copy it if they keep it.
type Emit func(items []int32, count int) error

type Miner struct {
	MinSup int
	// NoLinear disables the single-path shortcut and forces full
	// recursive construction for every header entry. Both settings
	// produce the same output set; the flag exists so that can be
	// checked.
	NoLinear bool
}

type condPath struct {
	items []int32
	count int
}

// Mine emits every frequent itemset of t, depth first.
func (m *Miner) Mine(t *Tree, emit Emit) error {
	for i := range t.headers {
		if err := m.MineEntry(t, i, nil, emit); err != nil {
			return err
		}
	}
	return nil
}

// MineEntry mines the single header entry i of t under the given
// prefix. Entries are independent of one another: each projects its
// own conditional tree, so callers may run top level entries
// concurrently as long as their emits are serialized. t is not
// mutated.
func (m *Miner) MineEntry(t *Tree, i int, prefix []int32, emit Emit) error {
	h := &t.headers[i]
	pattern := make([]int32, 0, len(prefix)+1)
	pattern = append(pattern, prefix...)
	pattern = append(pattern, h.Item)
	if err := emit(pattern, h.Count); err != nil {
		return err
	}

	if !m.NoLinear && t.singleNode(i) {
		// Every transaction counted at the item's lone node passed
		// through the same ancestor chain, so each subset of the chain
		// co-occurs with the pattern at exactly h.Count.
		path := t.ancestors(h.head)
		return enumeratePath(path, pattern, h.Count, emit)
	}

	counts := make(map[int32]int)
	paths := make([]condPath, 0, 8)
	for n := h.head; n != noNode; n = t.nodes[n].hlink {
		items := t.ancestors(n)
		if len(items) == 0 {
			continue
		}
		for _, item := range items {
			counts[item] += t.nodes[n].count
		}
		paths = append(paths, condPath{items: items, count: t.nodes[n].count})
	}

	headers := BuildHeaders(counts, m.MinSup)
	if len(headers) == 0 {
		return nil
	}
	log.Debugf("conditional tree for item %d: %d entries, %d paths", h.Item, len(headers), len(paths))

	ct := NewTree(headers)
	for _, p := range paths {
		ct.Add(p.items, p.count)
	}
	for j := range ct.headers {
		if err := m.MineEntry(ct, j, pattern, emit); err != nil {
			return err
		}
	}
	return nil
}
