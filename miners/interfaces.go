package miners

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

// Note: the miner's Close function should close neither the reporter
// nor the datatype; cmd.Main owns both.
type Miner interface {
	Mine(lattice.DataType, Reporter, lattice.Formatter) error
	Close() error
}

type Reporter interface {
	Report(lattice.Node) error
	Close() error
}
