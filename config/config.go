package config

import (
	"math/rand"
	"path/filepath"
	"runtime"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/stores/intint"
)

type Config struct {
	Cache        string
	Output       string
	SupportRatio float64
	Parallelism  int
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:        c.Cache,
		Output:       c.Output,
		SupportRatio: c.SupportRatio,
		Parallelism:  c.Parallelism,
	}
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) IntIntMultiMap(name string) (intint.MultiMap, error) {
	if c.Cache == "" {
		return intint.AnonBpTree()
	} else {
		return intint.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
