package intint

import "testing"
import "github.com/stretchr/testify/assert"

func anon(t *assert.Assertions) *BpTree {
	b, err := AnonBpTree()
	t.Nil(err)
	return b
}

func TestAddCountHas(x *testing.T) {
	t := assert.New(x)
	b := anon(t)
	defer b.Close()
	t.Nil(b.Add(1, 10))
	t.Nil(b.Add(1, 11))
	t.Nil(b.Add(2, 20))
	t.Equal(3, b.Size())
	count, err := b.Count(1)
	t.Nil(err)
	t.Equal(2, count)
	has, err := b.Has(2)
	t.Nil(err)
	t.True(has)
	has, err = b.Has(3)
	t.Nil(err)
	t.False(has)
}

func TestIterators(x *testing.T) {
	t := assert.New(x)
	b := anon(t)
	defer b.Close()
	t.Nil(b.Add(1, 10))
	t.Nil(b.Add(1, 11))
	t.Nil(b.Add(2, 20))

	keys := make(map[int32]bool)
	t.Nil(DoKey(b.Keys, func(k int32) error {
		keys[k] = true
		return nil
	}))
	t.Equal(map[int32]bool{1: true, 2: true}, keys)

	values := make(map[int32]bool)
	vi, err := b.Values()
	t.Nil(err)
	var v int32
	for v, err, vi = vi(); vi != nil; v, err, vi = vi() {
		values[v] = true
	}
	t.Nil(err)
	t.Equal(map[int32]bool{10: true, 11: true, 20: true}, values)

	pairs := 0
	t.Nil(Do(b.Iterate, func(k, v int32) error {
		pairs++
		return nil
	}))
	t.Equal(3, pairs)
}

func TestFindAndRemove(x *testing.T) {
	t := assert.New(x)
	b := anon(t)
	defer b.Close()
	t.Nil(b.Add(7, 70))
	t.Nil(b.Add(7, 71))
	t.Nil(b.Add(8, 80))

	found := make(map[int32]bool)
	t.Nil(b.DoFind(7, func(k, v int32) error {
		t.Equal(int32(7), k)
		found[v] = true
		return nil
	}))
	t.Equal(map[int32]bool{70: true, 71: true}, found)

	t.Nil(b.Remove(7, func(v int32) bool { return v == 70 }))
	count, err := b.Count(7)
	t.Nil(err)
	t.Equal(1, count)
	t.Equal(2, b.Size())
}
