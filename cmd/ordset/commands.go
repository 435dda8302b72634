package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/ordset/Queues"
	"github.com/g-m-twostay/ordset/Sets"
	"github.com/g-m-twostay/ordset/Trees"
)

func makeSet(cctx *cli.Context) (Sets.Set, error) {
	name := cctx.String("backend")
	s, err := Sets.Make(name)
	if err != nil {
		return nil, fmt.Errorf("choosing backend (have %v): %w", Sets.Backends(), err)
	}
	slog.Debug("using backend", "backend", name)
	return s, nil
}

func runDemo(cctx *cli.Context) error {
	s, err := makeSet(cctx)
	if err != nil {
		return err
	}
	Sets.Adds(s, 1, 5, 2, 4, 3)
	ops, err := parseOps([]string{
		"size", "member:3", "member:6", "pred:1", "pred:5",
		"rank:1", "rank:3", "rank:6", "select:0", "select:3", "select:4",
		"delete:6", "select:4", "delete:3", "select:2", "size",
	})
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	fmt.Fprintln(w, "inserted 1 5 2 4 3")
	for _, o := range ops {
		fmt.Fprintln(w, apply(s, o))
	}
	return nil
}

func runOps(cctx *cli.Context) error {
	args := cctx.Args().Slice()
	if p := cctx.String("script"); p != "" {
		var r io.Reader = os.Stdin
		if p != "-" {
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		script, err := readScript(r)
		if err != nil {
			return err
		}
		args = append(script, args...)
	}
	if len(args) == 0 {
		return fmt.Errorf("need to provide operations as arguments or with --script")
	}
	ops, err := parseOps(args)
	if err != nil {
		return err
	}
	s, err := makeSet(cctx)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	for _, o := range ops {
		fmt.Fprintln(w, apply(s, o))
	}
	slog.Debug("ran operations", "count", len(ops), "size", s.Size())
	return nil
}

func parseValues(ss []string) ([]int32, error) {
	vs := make([]int32, len(ss))
	for i, s := range ss {
		x, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", s, err)
		}
		vs[i] = int32(x)
	}
	return vs, nil
}

func runDump(cctx *cli.Context) error {
	vs, err := parseValues(cctx.Args().Slice())
	if err != nil {
		return err
	}
	var tree interface {
		Trees.Tree
		Print(io.Writer) error
		Check() error
	}
	if cctx.Bool("bst") {
		tree = Trees.NewBSTree()
	} else {
		tree = Trees.NewOSTree[uint]()
	}
	n := Sets.Adds(tree, vs...)
	if err := tree.Check(); err != nil {
		return err
	}
	slog.Debug("built tree", "inserted", n, "duplicates", uint(len(vs))-n,
		"min_depth", tree.MinDepth(), "max_depth", tree.MaxDepth())
	return tree.Print(cctx.App.Writer)
}

func runBackends(cctx *cli.Context) error {
	for _, name := range Sets.Backends() {
		fmt.Fprintln(cctx.App.Writer, name)
	}
	return nil
}

// benchResult is the time each phase of the workload took on one backend.
type benchResult struct {
	name                     string
	insert, query, deleteAll time.Duration
	size                     uint
}

// bench inserts n random values, runs q queries of each kind, then deletes
// everything. The workload depends only on seed.
func bench(name string, n, q int, seed int64) (benchResult, error) {
	s, err := Sets.Make(name)
	if err != nil {
		return benchResult{}, err
	}
	rg := rand.New(rand.NewSource(seed))
	vs := make([]int32, n)
	for i := range vs {
		vs[i] = rg.Int31n(int32(2*n) + 1)
	}
	res := benchResult{name: name}

	start := time.Now()
	Sets.Adds(s, vs...)
	res.insert = time.Since(start)
	res.size = s.Size()

	start = time.Now()
	for i := 0; i < q; i++ {
		x := vs[rg.Intn(n)]
		if !s.Member(x) {
			return res, fmt.Errorf("%s lost %d", name, x)
		}
		s.Rank(x)
		s.Select(uint(rg.Intn(int(res.size))))
	}
	res.query = time.Since(start)

	start = time.Now()
	for _, x := range vs {
		s.Delete(x)
	}
	res.deleteAll = time.Since(start)
	if s.Size() != 0 {
		return res, fmt.Errorf("%s kept %d elements after deleting all", name, s.Size())
	}
	return res, nil
}

func runBench(cctx *cli.Context) error {
	n, q := cctx.Int("n"), cctx.Int("queries")
	if n <= 0 {
		return fmt.Errorf("--n must be positive, got %d", n)
	}
	names := Sets.Backends()
	if only := cctx.StringSlice("only"); len(only) > 0 {
		names = slices.DeleteFunc(names, func(name string) bool {
			return !slices.Contains(only, name)
		})
	}
	seed := cctx.Int64("seed")
	results := make([]benchResult, 0, len(names))
	if cctx.Bool("parallel") {
		rs, err := benchParallel(names, n, q, seed)
		if err != nil {
			return err
		}
		results = rs
	} else {
		for _, name := range names {
			res, err := bench(name, n, q, seed)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "%-8s %12s %12s %12s\n", "backend", "insert", "query", "delete")
	for _, res := range results {
		slog.Info("bench", "backend", res.name, "n", n, "size", res.size,
			"insert", res.insert, "query", res.query, "delete", res.deleteAll)
		fmt.Fprintf(w, "%-8s %12s %12s %12s\n", res.name, res.insert, res.query, res.deleteAll)
	}
	return nil
}

// benchParallel runs one goroutine per backend and returns the results in the
// order of names.
func benchParallel(names []string, n, q int, seed int64) ([]benchResult, error) {
	type outcome struct {
		i   int
		res benchResult
		err error
	}
	done := Queues.MakeConcurrentLinkedQueue[outcome]()
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bench(name, n, q, seed)
			done.Push(outcome{i, res, err})
		}()
	}
	wg.Wait()
	results := make([]benchResult, len(names))
	for !done.Empty() {
		o, _ := done.Pop()
		if o.err != nil {
			return nil, o.err
		}
		results[o.i] = o.res
	}
	return results, nil
}
