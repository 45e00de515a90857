package fptree

const noNode = int32(-1)

// node is one position on one compacted path of the tree. Nodes live in
// the owning Tree's arena and refer to each other by arena index, so a
// discarded conditional tree takes all of its nodes with it.
type node struct {
	item     int32
	count    int
	parent   int32
	hlink    int32 // next node holding the same item, noNode at chain end
	children map[int32]int32
}

// Header is one entry of a tree's header table: an item, its aggregate
// support within the tree, and the head/tail of the chain threading
// every node that holds the item.
type Header struct {
	Item  int32
	Count int
	head  int32
	tail  int32
}

// Tree is a prefix-sharing tree over item sequences. The root is
// nodes[0] and holds no item. The header table is fixed at construction
// time; Add only inserts items the table knows about.
type Tree struct {
	nodes   []node
	headers []Header
	index   map[int32]int // item -> position in headers
}

func NewTree(headers []Header) *Tree {
	t := &Tree{
		nodes:   make([]node, 1, 64),
		headers: headers,
		index:   make(map[int32]int, len(headers)),
	}
	t.nodes[0] = node{item: -1, parent: noNode, hlink: noNode}
	for i := range t.headers {
		t.headers[i].head = noNode
		t.headers[i].tail = noNode
		t.index[t.headers[i].Item] = i
	}
	return t
}

func (t *Tree) Headers() []Header {
	return t.headers
}

// Add inserts one item sequence with a multiplicity. Items absent from
// the header table were pruned as infrequent and are dropped; the rest
// are ordered by the table's insertion order before walking the tree,
// so any two sequences sharing a prefix share tree nodes for it.
func (t *Tree) Add(items []int32, count int) {
	path := make([]int32, 0, len(items))
	for _, item := range items {
		if _, has := t.index[item]; has {
			path = append(path, item)
		}
	}
	t.sortForInsert(path)
	cur := int32(0)
	for _, item := range path {
		kid, has := t.nodes[cur].children[item]
		if has {
			t.nodes[kid].count += count
			cur = kid
			continue
		}
		kid = int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			item:   item,
			count:  count,
			parent: cur,
			hlink:  noNode,
		})
		if t.nodes[cur].children == nil {
			t.nodes[cur].children = make(map[int32]int32)
		}
		t.nodes[cur].children[item] = kid
		h := &t.headers[t.index[item]]
		if h.head == noNode {
			h.head = kid
		} else {
			t.nodes[h.tail].hlink = kid
		}
		h.tail = kid
		cur = kid
	}
}

// singleNode reports whether the item of header entry i occurs in
// exactly one tree node.
func (t *Tree) singleNode(i int) bool {
	h := &t.headers[i]
	return h.head != noNode && t.nodes[h.head].hlink == noNode
}

// ancestors returns the items on the path from the parent of n up to
// (excluding) the root.
func (t *Tree) ancestors(n int32) []int32 {
	items := make([]int32, 0, 8)
	for p := t.nodes[n].parent; p != 0 && p != noNode; p = t.nodes[p].parent {
		items = append(items, t.nodes[p].item)
	}
	return items
}
