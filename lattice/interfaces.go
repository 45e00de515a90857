package lattice

import (
	"io"
)

type Input func() (reader io.Reader, closer func())

type Loader interface {
	Load(input Input) (DataType, error)
}

// DataType is a loaded transaction database. N is the number of
// transactions, MinSup the integer support threshold derived from the
// configured ratio (ceil(ratio * N)).
type DataType interface {
	N() int
	MinSup() int
	Transactions() [][]int32
	ItemCounts() map[int32]int
	Close() error
}

// Node is a pattern in the itemset lattice together with its support.
type Node interface {
	Label() []byte
	Level() int
	Support() int
	String() string
}

type Formatter interface {
	FileExt() string
	FormatPattern(Node) string
}
