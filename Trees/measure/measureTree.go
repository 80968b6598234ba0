// Command measure times removal and lookup on BSTree in steps, removing a growing
// share of the values each step, and reports the tree's depth for random and
// sorted insertion orders.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/go-bst/Trees"
)

func main() {
	app := &cli.App{
		Name:  "measure",
		Usage: "measure BSTree depth and removal/lookup cost",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of values added before each step",
				Value:   100000,
				EnvVars: []string{"BST_MEASURE_COUNT"},
			},
			&cli.IntFlag{
				Name:    "steps",
				Usage:   "number of removal steps, at least 2; step i removes i/steps of the values",
				Value:   20,
				EnvVars: []string{"BST_MEASURE_STEPS"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed",
				Value:   0,
				EnvVars: []string{"BST_MEASURE_SEED"},
			},
			&cli.BoolFlag{
				Name:  "sorted",
				Usage: "add values in ascending order (degenerate tree)",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the shape of a tree of at most 64 values and exit",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("measure failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	count, steps int
	sorted       bool
	rg           *rand.Rand
}

// validate rejects settings that would run no removal step.
func (c *config) validate() error {
	if c.count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", c.count)
	}
	if c.steps < 2 {
		return fmt.Errorf("--steps must be at least 2, got %d", c.steps)
	}
	return nil
}

func (c *config) values() []int {
	all := make([]int, c.count)
	for i := range all {
		if c.sorted {
			all[i] = i
		} else {
			all[i] = c.rg.Int()
		}
	}
	return all
}

func run(cctx *cli.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	c := &config{
		count:  cctx.Int("count"),
		steps:  cctx.Int("steps"),
		sorted: cctx.Bool("sorted"),
		rg:     rand.New(rand.NewSource(cctx.Int64("seed"))),
	}
	if err := c.validate(); err != nil {
		return err
	}
	if cctx.Bool("dump") {
		c.count = min(c.count, 64)
		tree := Trees.New(c.values()...)
		fmt.Println(tree.Dump())
		return nil
	}

	testing.Init()
	{
		tree := Trees.New(c.values()...)
		slog.Info("built tree", "size", tree.Len(), "height", tree.Height(), "avgLeafDepth", tree.AverageDepth(), "sorted", c.sorted)
	}
	var cs []float64
	var n int
	for i := 1; i < c.steps; i++ {
		rmv := c.count / c.steps * i
		br := testing.Benchmark(func(b *testing.B) {
			benchDelQry(b, c, rmv)
		})
		cs = append(cs, float64(br.T.Milliseconds()))
		n += br.N
		slog.Info("step", "step", i, "removed", rmv, "iterations", br.N, "nsPerOp", br.NsPerOp())
	}
	if n == 0 {
		return fmt.Errorf("no benchmark iterations ran")
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(n)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("average: %fms/op\n", avg)
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(n)))
	return nil
}

// benchDelQry removes the first rmv values, then looks up every value plus as
// many random ones.
func benchDelQry(b *testing.B, c *config, rmv int) {
	for range b.N {
		b.StopTimer()
		all := c.values()
		tree := Trees.New(all...)
		m := slices.Max(all) + 1
		b.StartTimer()
		for _, v := range all[:rmv] {
			tree.Remove(v)
		}
		for _, v := range all {
			tree.Has(v)
		}
		for range len(all) {
			tree.Has(c.rg.Intn(m))
		}
	}
}
