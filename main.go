package main

/*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/cmd"
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/miners"
	"github.com/Aka2210/Hamm-Algorithm/miners/fpgrowth"
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	cmd.UsageMessage = "hamm --help"
	cmd.ExtendedMessage = `
hamm - mine all frequent itemsets from a transaction database

$ hamm -o <path> --support-ratio=<float> [Global Options] \
    <type> [Type Options] <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<type> [Type Options]] then
      <input-path> then [<mode> [Mode Options]]. Changes in ordering are
      not supported.

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.

Global Options
    -h, --help                view this message
    --types                   show the available types
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support-ratio=<float>   minimum support as a fraction of the
                              transaction count, in (0, 1] (required).
                              the integer threshold is
                              ceil(ratio * transactions) and the
                              comparison is inclusive (>=).
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Types
    itemset                   sets of items, treated as sets of integers

    itemset Example
        $ hamm -o /tmp/hamm --support-ratio=.5 \
            itemset ./data/transactions.dat.gz \
            fpgrowth

    itemset Options
        -h, help                 view this message
        -l, loader=<loader-name> the loader to use (default int)
        --relative               report support as a ratio over the
                                 transaction count (rounded to 4
                                 decimals) instead of an absolute count

    itemset Loaders
       int                         each line is a transaction
                                   the items are integers
                                   the items are space separated

       int Example file:
            10 1 5 7
            213 2 5 1
            23 1 4 5 7
            3 4 1

       csv                         same, but the items are comma
                                   separated

Modes
    fpgrowth                  FP-Growth with a single-path shortcut:
                              when an item occurs in exactly one node
                              of a conditional tree, the subsets of its
                              ancestor chain are enumerated directly
                              instead of building further conditional
                              trees.

    fpgrowth Options
        -h, help              view this message
        -p, parallelism=<int> 0 = serial (default), -1 = one worker per
                              cpu, n = n workers over the top level
                              header entries. Negative values must use
                              the = form: --parallelism=-1
        --no-linear           disable the single-path shortcut (always
                              build conditional trees). Output is
                              identical; this exists for regression
                              comparison.

Reporters
    chain                     chain several reporters together (end the
                              chain with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the
                              output dir
    count                     write the number of patterns found to a
                              file in the output dir
    unique                    takes an "inner reporter" but only passes
                              unique patterns to it
    skip                      takes an "inner reporter" but only passes
                              every n-th pattern to it
    heap-profile              write a heap profile per pattern batch

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the
                              output directory to write the patterns

    count Options
        -c, count=<name>      the name of the count file (default
                              count.txt)

    skip Options
        -n, num=<int>         forward every n-th pattern (default 100)

    heap-profile Options
        -p, profile=<path>    where you want the heap-profile written
        -e, every=<int>       collect every n patterns (default 1)
        -a, after=<int>       collect after n patterns (default 0)

    Examples

        $ hamm -o <path> --support-ratio=.25 \
            itemset ./transactions.dat \
            fpgrowth \
            chain log file

        $ hamm -o <path> --support-ratio=.25 \
            itemset -l csv --relative ./transactions.csv \
            fpgrowth --parallelism=-1 \
            chain skip -n 1000 log endchain file
`
}

func fpgrowthMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"parallelism=",
			"no-linear",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	noLinear := false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-p", "--parallelism":
			conf.Parallelism = cmd.ParseInt(oa.Arg())
		case "--no-linear":
			noLinear = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return fpgrowth.NewMiner(conf, noLinear), args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"fpgrowth": fpgrowthMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "types", "reporters",
			"support-ratio=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v fpgrowth %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	supportRatio := 0.0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support-ratio":
			supportRatio = cmd.ParseRatio(oa.Arg())
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if supportRatio <= 0 {
		fmt.Fprintf(os.Stderr, "You must supply a support ratio in (0, 1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:        cache,
		Output:       output,
		SupportRatio: supportRatio,
	}
	return cmd.Main(args, conf, modes)
}
