package reporters

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

type Collector struct {
	Nodes []lattice.Node
}

func (c *Collector) Report(n lattice.Node) error {
	c.Nodes = append(c.Nodes, n)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
