package itemset

import (
	"io"
	"os"
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

func inputOf(text string) lattice.Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
}

func TestIntLoader(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.5}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	dt, err := loader.Load(inputOf("1 2 3\n1 2\n\n1\n2 3\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(4, dt.N())
	t.Equal(2, dt.MinSup())
	t.Equal(map[int32]int{1: 3, 2: 3, 3: 2}, dt.ItemCounts())
	t.Equal([][]int32{{1, 2, 3}, {1, 2}, {1}, {2, 3}}, dt.Transactions())
}

func TestCsvLoader(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.5}
	loader, err := NewCsvLoader(conf)
	t.Nil(err)
	dt, err := loader.Load(inputOf("1,2,3\n1,2\n1\n2,3\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(4, dt.N())
	t.Equal(map[int32]int{1: 3, 2: 3, 3: 2}, dt.ItemCounts())
}

func TestLoaderCollapsesDuplicates(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 1.0}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	dt, err := loader.Load(inputOf("7 7 3 7\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(1, dt.N())
	t.Equal([][]int32{{3, 7}}, dt.Transactions())
	t.Equal(map[int32]int{3: 1, 7: 1}, dt.ItemCounts())
}

func TestLoaderMinSupCeil(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.4}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	dt, err := loader.Load(inputOf("1\n2\n3\n4\n5\n6\n7\n"))
	t.Nil(err)
	defer dt.Close()
	// ceil(0.4 * 7) = 3
	t.Equal(3, dt.MinSup())
}

func TestLoaderRejectsMalformedToken(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.5}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	_, err = loader.Load(inputOf("1 2\n3 oops 4\n"))
	t.NotNil(err)
}

func TestLoaderFailureRemovesCacheFile(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.5, Cache: x.TempDir()}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	_, err = loader.Load(inputOf("1 2\n3 oops\n"))
	t.NotNil(err)
	entries, err := os.ReadDir(conf.Cache)
	t.Nil(err)
	t.Equal(0, len(entries), "failed load left the inverted index behind")
}

func TestLoaderRejectsNegativeItem(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{SupportRatio: 0.5}
	loader, err := NewIntLoader(conf)
	t.Nil(err)
	_, err = loader.Load(inputOf("1 -2\n"))
	t.NotNil(err)
}

func TestPatternLabelAndLevel(x *testing.T) {
	t := assert.New(x)
	a := NewPattern([]int32{3, 1, 2}, 5)
	b := NewPattern([]int32{2, 3, 1}, 5)
	t.Equal([]int32{1, 2, 3}, a.Items)
	t.Equal(3, a.Level())
	t.Equal(5, a.Support())
	t.Equal(a.Label(), b.Label())
	c := NewPattern([]int32{1, 2}, 5)
	t.NotEqual(a.Label(), c.Label())
}

func TestFormatterAbsolute(x *testing.T) {
	t := assert.New(x)
	f := &Formatter{N: 4}
	t.Equal(".items", f.FileExt())
	t.Equal("1 2 #SUP: 3", f.FormatPattern(NewPattern([]int32{2, 1}, 3)))
}

func TestFormatterRelative(x *testing.T) {
	t := assert.New(x)
	f := &Formatter{Relative: true, N: 4}
	t.Equal("1 2:0.7500", f.FormatPattern(NewPattern([]int32{2, 1}, 3)))
	t.Equal("9:0.2500", f.FormatPattern(NewPattern([]int32{9}, 1)))
}
