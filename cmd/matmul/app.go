// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/workerpool"
)

// ErrInvalidArgument marks command-line parse and validation failures.
var ErrInvalidArgument = errors.New("matmul: invalid argument")

const (
	usageLine   = "matmul <algo> <n>"
	displayMode = "display"
)

// commandNames are the documented algo spellings, in usage order.
var commandNames = []string{"naive", "blocked", "iter", "rayon", displayMode}

// config holds the flag values of one invocation.
type config struct {
	seed        int64
	workers     int
	rowsPerTask int
	verbose     bool
}

// newRootCmd wires the cobra command writing products to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Multiply two random square matrices with a chosen strategy",
		Long: "Multiply two random n×n matrices drawn from U[-1,1).\n\n" +
			"algo is one of " + strings.Join(acceptedNames(), ", ") + ".\n" +
			"iter and rayon are aliases of reordered and parallel; display prints\n" +
			"both operands and the naive product. Tiled strategies need n % 64 == 0.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: usage: %s", ErrInvalidArgument, usageLine)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0], args[1], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	})

	flags := cmd.Flags()
	flags.Int64Var(&cfg.seed, "seed", 0, "seed for the random operands (0 = time-based)")
	flags.IntVar(&cfg.workers, "workers", 0, "worker count for rayon (0 = GOMAXPROCS)")
	flags.IntVar(&cfg.rowsPerTask, "rows-per-task", matrix.DefaultRowsPerTask,
		"rows per parallel task (0 = one contiguous chunk per worker)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// mode is a parsed algo argument: either a strategy or the display mode.
type mode struct {
	alg     matrix.Algorithm
	display bool
}

// parseMode resolves the algo argument.
func parseMode(s string) (mode, error) {
	if strings.EqualFold(strings.TrimSpace(s), displayMode) {
		return mode{alg: matrix.Naive, display: true}, nil
	}
	alg, err := matrix.ParseAlgorithm(s)
	if err != nil {
		return mode{}, fmt.Errorf("%w: algo should be one of %s (got %q)",
			ErrInvalidArgument, strings.Join(acceptedNames(), ", "), s)
	}

	return mode{alg: alg}, nil
}

// parseSize resolves the n argument, capped at matrix.MaxDimension.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: n should be a positive integer (got %q)", ErrInvalidArgument, s)
	}
	if n > matrix.MaxDimension {
		return 0, fmt.Errorf("%w: n should be a positive integer at most %d (got %q)",
			ErrInvalidArgument, matrix.MaxDimension, s)
	}

	return n, nil
}

// acceptedNames lists the documented names followed by the canonical names
// not already among them.
func acceptedNames() []string {
	canonical := lo.Map(matrix.Algorithms(), func(a matrix.Algorithm, _ int) string { return a.String() })
	return lo.Uniq(append(append([]string{}, commandNames...), canonical...))
}

func run(cfg config, algoArg, sizeArg string, stdout, stderr io.Writer) error {
	m, err := parseMode(algoArg)
	if err != nil {
		return err
	}
	n, err := parseSize(sizeArg)
	if err != nil {
		return err
	}
	if cfg.rowsPerTask < 0 {
		return fmt.Errorf("%w: --rows-per-task must be >= 0", ErrInvalidArgument)
	}
	if cfg.workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0", ErrInvalidArgument)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating operands", "n", n, "seed", seed)
	a, b, err := randomOperands(n, seed)
	if err != nil {
		return err
	}

	if m.display {
		c, err := matrix.MulNaive(a, b)
		if err != nil {
			return err
		}
		return display(stdout, a, b, c)
	}

	pool := workerpool.Default()
	if cfg.workers > 0 {
		pool = workerpool.New(cfg.workers)
		defer pool.Close()
	}
	if m.alg == matrix.Parallel {
		logger.Debug("worker pool", "workers", pool.NumWorkers(), "arch", runtime.GOARCH, "cpu", cpuFeatures())
	}

	start := time.Now()
	c, err := matrix.Multiply(m.alg, a, b, matrix.WithPool(pool), matrix.WithRowsPerTask(cfg.rowsPerTask))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Info("multiplied",
		"algo", m.alg.String(),
		"n", n,
		"elapsed", elapsed,
		"gflops", gflops(n, elapsed),
	)
	logger.Debug("result", "trace", trace(c))

	return nil
}

// randomOperands draws A and B concurrently, each from its own stream
// derived from seed; a *rand.Rand must not be shared between goroutines.
func randomOperands(n int, seed int64) (*matrix.Dense, *matrix.Dense, error) {
	var a, b *matrix.Dense
	var g errgroup.Group
	g.Go(func() error {
		var err error
		a, err = matrix.Random(n, matrix.WithSeed(deriveSeed(seed, 1)))
		return err
	})
	g.Go(func() error {
		var err error
		b, err = matrix.Random(n, matrix.WithSeed(deriveSeed(seed, 2)))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// deriveSeed returns the stream-th SplitMix64 output after parent: the state
// advances by stream golden-gamma steps and is then finalized.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) + stream*0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// display prints "A multiplied by B gives C" with every matrix as a table.
func display(w io.Writer, a, b, c *matrix.Dense) error {
	for _, part := range []func() error{
		func() error { return a.WriteTable(w) },
		func() error { _, err := io.WriteString(w, "multiplied by\n"); return err },
		func() error { return b.WriteTable(w) },
		func() error { _, err := io.WriteString(w, "gives\n"); return err },
		func() error { return c.WriteTable(w) },
	} {
		if err := part(); err != nil {
			return err
		}
	}

	return nil
}

// gflops reports 2n³ floating-point operations over elapsed, in GFLOP/s.
func gflops(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	fn := float64(n)

	return 2 * fn * fn * fn / elapsed.Seconds() / 1e9
}

// trace sums the diagonal; a cheap checksum for debug output.
func trace(m *matrix.Dense) float64 {
	var s float64
	for i := 0; i < m.N(); i++ {
		v, _ := m.At(i, i)
		s += v
	}

	return s
}

// cpuFeatures names the SIMD features relevant to a float64 kernel.
func cpuFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX2 {
			out = append(out, "avx2")
		}
		if cpu.X86.HasFMA {
			out = append(out, "fma")
		}
		if cpu.X86.HasAVX512F {
			out = append(out, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "asimd")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "sve")
		}
	}

	return out
}
