package reporters

import (
	"bufio"
	"fmt"
	"os"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

type File struct {
	config   *config.Config
	fmtr     lattice.Formatter
	f        *os.File
	patterns *bufio.Writer
}

// NewFile creates the patterns file in the output dir up front; an
// unwritable output path fails before any mining work happens.
func NewFile(c *config.Config, fmtr lattice.Formatter, patternsFilename string) (*File, error) {
	f, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		f:        f,
		patterns: bufio.NewWriter(f),
	}
	return r, nil
}

func (r *File) Report(n lattice.Node) error {
	_, err := fmt.Fprintln(r.patterns, r.fmtr.FormatPattern(n))
	return err
}

func (r *File) Close() error {
	err := r.patterns.Flush()
	if err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
