// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// treebench inserts, searches and deletes a set of random string keys in
// every tree variant and reports the resulting height and timings.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/k33nice/trees"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		exitwithstatus.Message("Error: %s\n", err)
	}
}

// newApp builds the command line; -v is taken by verbose, so the built in
// version flag is hidden.
func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "treebench"
	app.Usage = "compare bst, rb, avl and treap on random string keys"
	app.Version = version
	app.HideVersion = true
	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "keys, n",
			Value: 100000,
			Usage: " number of random keys `COUNT`",
		},
		cli.IntFlag{
			Name:  "length, l",
			Value: 10,
			Usage: " length of each key `CHARS`",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 0,
			Usage: " random seed `SEED` (0 = time based)",
		},
		cli.StringFlag{
			Name:  "variants",
			Value: "bst,rb,avl,treap",
			Usage: " comma separated `LIST` of variants",
		},
		cli.StringFlag{
			Name:  "log-dir",
			Value: "log",
			Usage: " directory for the log file `DIR`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " also log to the console",
		},
		cli.BoolFlag{
			Name:  "dump",
			Usage: " print each tree after the insert phase (small key sets only)",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	options, err := parseOptions(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(options.logDir, 0700); err != nil {
		return err
	}
	logging := logger.Configuration{
		Directory: options.logDir,
		File:      "treebench.log",
		Size:      1048576,
		Count:     10,
		Console:   options.verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		return err
	}
	defer logger.Finalise()

	log := logger.New("treebench")
	log.Infof("keys: %d  length: %d  seed: %d", options.keys, options.length, options.seed)

	rng := rand.New(rand.NewSource(options.seed))
	keys, err := randomKeys(rng, options.keys, options.length)
	if err != nil {
		return err
	}
	priorities := make([]int64, len(keys))
	for i := range priorities {
		priorities[i] = rng.Int63n(100000007)
	}

	fmt.Fprintf(c.App.Writer, "key set: %d\n", len(keys))
	for _, v := range options.variants {
		var dump func(*trees.Tree)
		if options.dump {
			dump = func(tree *trees.Tree) {
				tree.Fprint(c.App.Writer, false)
			}
		}
		r, err := runVariant(v, keys, priorities, dump)
		if err != nil {
			log.Errorf("%v: %s", v, err)
			return err
		}
		log.Infof("%v: height: %d  insert: %v  search: %v  delete: %v", v, r.height, r.insert, r.search, r.remove)
		r.report(c.App.Writer)
	}
	return nil
}

type options struct {
	keys     int
	length   int
	seed     int64
	variants []trees.Variant
	logDir   string
	verbose  bool
	dump     bool
}

const maxDumpKeys = 64

func parseOptions(c *cli.Context) (*options, error) {
	o := &options{
		keys:    c.Int("keys"),
		length:  c.Int("length"),
		seed:    c.Int64("seed"),
		logDir:  c.String("log-dir"),
		verbose: c.Bool("verbose"),
		dump:    c.Bool("dump"),
	}
	if o.keys <= 0 {
		return nil, fmt.Errorf("keys must be positive, not %d", o.keys)
	}
	if o.length <= 0 {
		return nil, fmt.Errorf("length must be positive, not %d", o.length)
	}
	if o.dump && o.keys > maxDumpKeys {
		return nil, fmt.Errorf("dump needs at most %d keys", maxDumpKeys)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	for _, name := range strings.Split(c.String("variants"), ",") {
		v, err := trees.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		o.variants = append(o.variants, v)
	}
	return o, nil
}
