package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/Aka2210/Hamm-Algorithm/types/itemset"
)

func TestUniqueSuppressesRepeats(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	u := NewUnique(c)
	a := itemset.NewPattern([]int32{1, 2}, 3)
	b := itemset.NewPattern([]int32{2, 1}, 3)
	d := itemset.NewPattern([]int32{1}, 4)
	t.Nil(u.Report(a))
	t.Nil(u.Report(b))
	t.Nil(u.Report(d))
	t.Equal(2, len(c.Nodes))
	t.Nil(u.Close())
}

func TestSkipForwardsEveryNth(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	s := NewSkip(3, c)
	for i := 0; i < 10; i++ {
		t.Nil(s.Report(itemset.NewPattern([]int32{int32(i)}, 1)))
	}
	t.Equal(3, len(c.Nodes))
	t.Nil(s.Close())
}

func TestChainFansOut(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	chain := &Chain{}
	chain.Reporters = append(chain.Reporters, a, b)
	t.Nil(chain.Report(itemset.NewPattern([]int32{1}, 1)))
	t.Equal(1, len(a.Nodes))
	t.Equal(1, len(b.Nodes))
	t.Nil(chain.Close())
}
