package itemset

import (
	"fmt"
	"strings"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

// Formatter renders patterns one per line. The default style reports
// absolute support with a " #SUP: <count>" trailer; the relative style
// reports the support ratio over N rounded to 4 decimal places with a
// ":<ratio>" trailer.
type Formatter struct {
	Relative bool
	N        int
}

func (f *Formatter) FileExt() string {
	return ".items"
}

func (f *Formatter) FormatPattern(node lattice.Node) string {
	p := node.(*Pattern)
	parts := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		parts = append(parts, fmt.Sprintf("%d", item))
	}
	items := strings.Join(parts, " ")
	if f.Relative {
		return fmt.Sprintf("%s:%.4f", items, float64(p.Count)/float64(f.N))
	}
	return fmt.Sprintf("%s #SUP: %d", items, p.Count)
}
