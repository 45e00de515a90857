package fptree

import "testing"
import "github.com/stretchr/testify/assert"

func countTree(counts map[int32]int, minSup int, txs [][]int32) *Tree {
	tree := NewTree(BuildHeaders(counts, minSup))
	for _, tx := range txs {
		tree.Add(tx, 1)
	}
	return tree
}

func TestSharedPrefixesMerge(x *testing.T) {
	t := assert.New(x)
	tree := countTree(map[int32]int{1: 3, 2: 2, 3: 1}, 1, [][]int32{
		{1, 2, 3},
		{1, 2},
		{1},
	})
	// all three transactions collapse onto the single path 1 -> 2 -> 3
	t.Equal(4, len(tree.nodes))
	t.Equal(3, tree.nodes[1].count)
	t.Equal(2, tree.nodes[2].count)
	t.Equal(1, tree.nodes[3].count)
}

func TestHeaderChainsAggregate(x *testing.T) {
	t := assert.New(x)
	tree := countTree(map[int32]int{1: 3, 2: 3, 3: 2}, 2, [][]int32{
		{1, 2, 3},
		{1, 2},
		{1},
		{2, 3},
	})
	for i := range tree.headers {
		h := &tree.headers[i]
		sum := 0
		for n := h.head; n != noNode; n = tree.nodes[n].hlink {
			t.Equal(h.Item, tree.nodes[n].item)
			sum += tree.nodes[n].count
		}
		t.Equal(h.Count, sum, "chain sum for item %d", h.Item)
	}
}

func TestAddDropsPrunedItems(x *testing.T) {
	t := assert.New(x)
	tree := countTree(map[int32]int{1: 2, 2: 2}, 2, [][]int32{
		{1, 2, 99},
		{1, 2, 44},
	})
	// 99 and 44 are not in the header table and never enter the tree
	t.Equal(3, len(tree.nodes))
}

func TestSingleNodeDetection(x *testing.T) {
	t := assert.New(x)
	tree := countTree(map[int32]int{1: 2, 2: 2, 3: 1}, 1, [][]int32{
		{1, 2},
		{1, 2, 3},
	})
	for i := range tree.headers {
		t.True(tree.singleNode(i), "item %d occurs once", tree.headers[i].Item)
	}

	branched := countTree(map[int32]int{1: 2, 2: 2, 3: 2}, 1, [][]int32{
		{1, 3},
		{2, 3},
		{1},
		{2},
	})
	for i := range branched.headers {
		single := branched.singleNode(i)
		if branched.headers[i].Item == 3 {
			t.False(single, "3 sits under two parents")
		} else {
			t.True(single)
		}
	}
}

func TestAncestors(x *testing.T) {
	t := assert.New(x)
	tree := countTree(map[int32]int{1: 3, 2: 2, 3: 1}, 1, [][]int32{
		{1, 2, 3},
		{1, 2},
		{1},
	})
	h3 := &tree.headers[tree.index[3]]
	t.Equal([]int32{2, 1}, tree.ancestors(h3.head))
	h1 := &tree.headers[tree.index[1]]
	t.Equal([]int32{}, tree.ancestors(h1.head))
}
