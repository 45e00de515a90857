package fptree

import (
	"sort"
)

// BuildHeaders turns per-item support counts into a header table for a
// new tree, keeping only items at or above minSup. Entries are sorted
// by ascending support, ties by ascending item id; that is the order
// the miner walks them in. Pure function of its inputs so the ordering
// policy can be tested apart from tree construction.
func BuildHeaders(counts map[int32]int, minSup int) []Header {
	headers := make([]Header, 0, len(counts))
	for item, count := range counts {
		if count >= minSup {
			headers = append(headers, Header{Item: item, Count: count, head: noNode, tail: noNode})
		}
	}
	sort.Slice(headers, func(i, j int) bool {
		if headers[i].Count == headers[j].Count {
			return headers[i].Item < headers[j].Item
		}
		return headers[i].Count < headers[j].Count
	})
	return headers
}

// sortForInsert orders a transaction's surviving items for insertion:
// descending support, ties by ascending item id. Every sequence fed to
// one tree uses the same rule, which is what makes prefixes shareable.
func (t *Tree) sortForInsert(items []int32) {
	sort.Slice(items, func(i, j int) bool {
		a := &t.headers[t.index[items[i]]]
		b := &t.headers[t.index[items[j]]]
		if a.Count == b.Count {
			return a.Item < b.Item
		}
		return a.Count > b.Count
	})
}
