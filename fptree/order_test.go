package fptree

import "testing"
import "github.com/stretchr/testify/assert"

func TestBuildHeadersFiltersAndSorts(x *testing.T) {
	t := assert.New(x)
	counts := map[int32]int{
		1: 5,
		2: 3,
		3: 3,
		4: 1,
		9: 2,
	}
	headers := BuildHeaders(counts, 2)
	t.Equal(4, len(headers))
	t.Equal(int32(9), headers[0].Item)
	t.Equal(int32(2), headers[1].Item)
	t.Equal(int32(3), headers[2].Item)
	t.Equal(int32(1), headers[3].Item)
	for _, h := range headers {
		t.Equal(counts[h.Item], h.Count)
	}
}

func TestBuildHeadersInclusiveThreshold(x *testing.T) {
	t := assert.New(x)
	headers := BuildHeaders(map[int32]int{7: 3}, 3)
	t.Equal(1, len(headers))
	t.Equal(int32(7), headers[0].Item)
}

func TestBuildHeadersEmpty(x *testing.T) {
	t := assert.New(x)
	t.Equal(0, len(BuildHeaders(map[int32]int{1: 1, 2: 2}, 3)))
	t.Equal(0, len(BuildHeaders(map[int32]int{}, 1)))
}

func TestSortForInsert(x *testing.T) {
	t := assert.New(x)
	headers := BuildHeaders(map[int32]int{1: 5, 2: 3, 3: 3, 9: 2}, 1)
	tree := NewTree(headers)
	items := []int32{9, 3, 1, 2}
	tree.sortForInsert(items)
	// descending support, ties broken by ascending item id
	t.Equal([]int32{1, 2, 3, 9}, items)
}
