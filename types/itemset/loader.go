package itemset

import (
	"bufio"
	"math"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
	"github.com/Aka2210/Hamm-Algorithm/stores/intint"
)

// ItemSets is a loaded transaction database: the transactions with
// duplicate items collapsed, an item -> transaction inverted index
// (fs2 backed, on disk when a cache dir is configured), and the
// support threshold derived from the configured ratio.
type ItemSets struct {
	config        *config.Config
	InvertedIndex intint.MultiMap
	txs           [][]int32
	counts        map[int32]int
	minSup        int
}

func newItemSets(conf *config.Config) (*ItemSets, error) {
	index, err := conf.IntIntMultiMap("itemsets-inverted")
	if err != nil {
		return nil, err
	}
	return &ItemSets{
		config:        conf,
		InvertedIndex: index,
		counts:        make(map[int32]int),
	}, nil
}

func (i *ItemSets) N() int {
	return len(i.txs)
}

func (i *ItemSets) MinSup() int {
	return i.minSup
}

func (i *ItemSets) Transactions() [][]int32 {
	return i.txs
}

func (i *ItemSets) ItemCounts() map[int32]int {
	return i.counts
}

func (i *ItemSets) Close() error {
	return i.InvertedIndex.Delete()
}

// Loader reads one transaction per line, items as integers split by
// the configured tokenizer. Blank lines are skipped, duplicate items
// within a line are collapsed. A token that is not a non-negative
// integer fails the whole load; there is no per-line recovery.
type Loader struct {
	config   *config.Config
	tokenize func(line string) []string
}

func NewIntLoader(conf *config.Config) (lattice.Loader, error) {
	return &Loader{config: conf, tokenize: strings.Fields}, nil
}

func NewCsvLoader(conf *config.Config) (lattice.Loader, error) {
	tokenize := func(line string) []string {
		return strings.Split(line, ",")
	}
	return &Loader{config: conf, tokenize: tokenize}, nil
}

func (l *Loader) Load(input lattice.Input) (lattice.DataType, error) {
	sets, err := newItemSets(l.config)
	if err != nil {
		return nil, err
	}
	reader, closer := input()
	defer closer()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items := set.NewSortedSet(10)
		for _, col := range l.tokenize(line) {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			item, err := strconv.ParseInt(col, 10, 32)
			if err != nil {
				sets.Close()
				return nil, errors.Errorf("input line %d contained non int '%s'", lineno, col)
			}
			if item < 0 {
				sets.Close()
				return nil, errors.Errorf("input line %d contained negative item %d", lineno, item)
			}
			items.Add(types.Int32(int32(item)))
		}
		if items.Size() == 0 {
			continue
		}
		tx := int32(len(sets.txs))
		txItems := make([]int32, 0, items.Size())
		for it, next := items.Items()(); next != nil; it, next = next() {
			item := int32(it.(types.Int32))
			txItems = append(txItems, item)
			if err := sets.InvertedIndex.Add(item, tx); err != nil {
				sets.Close()
				return nil, err
			}
		}
		sets.txs = append(sets.txs, txItems)
	}
	if err := scanner.Err(); err != nil {
		sets.Close()
		return nil, err
	}
	err = intint.DoKey(sets.InvertedIndex.Keys, func(item int32) error {
		count, err := sets.InvertedIndex.Count(item)
		if err != nil {
			return err
		}
		sets.counts[item] = count
		return nil
	})
	if err != nil {
		sets.Close()
		return nil, err
	}
	sets.minSup = int(math.Ceil(l.config.SupportRatio * float64(len(sets.txs))))
	if sets.minSup < 1 {
		sets.minSup = 1
	}
	errors.Logf("INFO", "loaded %d transactions, %d distinct items, min-sup %d",
		len(sets.txs), len(sets.counts), sets.minSup)
	return sets, nil
}
