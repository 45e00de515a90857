package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

// Pattern is one frequent itemset with its support count. Items are
// kept in ascending order.
type Pattern struct {
	Items []int32
	Count int
}

// NewPattern copies and sorts items; the miner reuses its buffers.
func NewPattern(items []int32, count int) *Pattern {
	p := &Pattern{
		Items: make([]int32, len(items)),
		Count: count,
	}
	copy(p.Items, items)
	sort.Slice(p.Items, func(i, j int) bool { return p.Items[i] < p.Items[j] })
	return p
}

func (p *Pattern) Level() int {
	return len(p.Items)
}

func (p *Pattern) Support() int {
	return p.Count
}

// Label is a canonical byte encoding of the itemset, usable as a
// dedup key.
func (p *Pattern) Label() []byte {
	bytes := make([]byte, 4*(len(p.Items)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(p.Items)))
	s := 4
	for _, item := range p.Items {
		binary.BigEndian.PutUint32(bytes[s:s+4], uint32(item))
		s += 4
	}
	return bytes
}

func (p *Pattern) String() string {
	parts := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		parts = append(parts, fmt.Sprintf("%d", item))
	}
	return fmt.Sprintf("<Pattern {%v} %d>", strings.Join(parts, " "), p.Count)
}

var _ lattice.Node = (*Pattern)(nil)
