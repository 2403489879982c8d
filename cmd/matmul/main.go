// SPDX-License-Identifier: MIT

// Command matmul drives the two multiplication kernels against each other:
// it builds a randomized operand pair, runs the sequential and the parallel
// kernel on it, prints both wall-clock timings, and validates the results
// element-wise.
//
// Two modes:
//   - one-shot: all four dimensions given via flags (or MATMUL_* env vars) —
//     run a single round and exit non-zero on validation failure;
//   - interactive (default): prompt for dimensions and worker count, report,
//     and loop until the user quits. Core errors are printed and the loop
//     continues, matching the round-based recovery contract.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/compare"
	"github.com/katalvlaran/matmul/matrix"
)

const svcName = "matmul"

type config struct {
	LogLevel string `env:"MATMUL_LOG_LEVEL" envDefault:"info"`
	RowsA    int    `env:"MATMUL_ROWS_A"    envDefault:"0"`
	ColsA    int    `env:"MATMUL_COLS_A"    envDefault:"0"`
	RowsB    int    `env:"MATMUL_ROWS_B"    envDefault:"0"`
	ColsB    int    `env:"MATMUL_COLS_B"    envDefault:"0"`
	Workers  int    `env:"MATMUL_WORKERS"   envDefault:"2"`
}

// oneShot reports whether every dimension was configured up front.
func (c config) oneShot() bool {
	return c.RowsA > 0 && c.ColsA > 0 && c.RowsB > 0 && c.ColsB > 0
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err.Error())
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to parse log level: %s", err.Error())
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rootCmd := &cobra.Command{
		Use:   svcName,
		Short: "Compare sequential and parallel dense integer matrix multiplication",
		Long: `matmul multiplies two randomly filled integer matrices twice —
once with the single-goroutine reference kernel and once with the statically
partitioned parallel kernel — then reports both timings and whether every
output cell agrees.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.oneShot() {
				return runOnce(cmd.OutOrStdout(), logger, cfg)
			}

			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg.Workers)
		},
	}

	rootCmd.Flags().IntVar(&cfg.RowsA, "rows-a", cfg.RowsA, "rows of matrix A")
	rootCmd.Flags().IntVar(&cfg.ColsA, "cols-a", cfg.ColsA, "cols of matrix A")
	rootCmd.Flags().IntVar(&cfg.RowsB, "rows-b", cfg.RowsB, "rows of matrix B")
	rootCmd.Flags().IntVar(&cfg.ColsB, "cols-b", cfg.ColsB, "cols of matrix B")
	rootCmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel worker count")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// round builds the operand pair, runs one comparison and prints the report.
func round(w io.Writer, logger *slog.Logger, rowsA, colsA, rowsB, colsB, workers int) error {
	a, err := matrix.NewDense(rowsA, colsA)
	if err != nil {
		return err
	}
	b, err := matrix.NewDense(rowsB, colsB)
	if err != nil {
		return err
	}
	a.FillRandom()
	b.FillRandom()

	logger.Debug("operands ready",
		slog.Int("rows_a", rowsA), slog.Int("cols_a", colsA),
		slog.Int("rows_b", rowsB), slog.Int("cols_b", colsB),
		slog.Int("workers", workers))

	rep, err := compare.Run(a, b, workers)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Single-threaded multiplication took %v.\n", rep.Sequential)
	fmt.Fprintf(w, "Multithreaded multiplication took %v (workers=%d, speedup=%.2fx).\n",
		rep.Parallel, rep.Workers, rep.Speedup())
	fmt.Fprintln(w, "Validating results...")
	if rep.Match {
		fmt.Fprintln(w, "Results are identical!")

		return nil
	}
	fmt.Fprintln(w, "Results differ!")
	logger.Error("kernel outputs disagree", slog.String("diff", rep.Diff))

	return fmt.Errorf("%s: kernel outputs disagree over a %dx%d result", svcName, rep.Rows, rep.Cols)
}

// runOnce executes a single configured round; validation failure is fatal.
func runOnce(w io.Writer, logger *slog.Logger, cfg config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("%s: workers must be >= 1, got %d", svcName, cfg.Workers)
	}

	return round(w, logger, cfg.RowsA, cfg.ColsA, cfg.RowsB, cfg.ColsB, cfg.Workers)
}

// runInteractive prompts for dimensions and worker count per round, prints
// each report, and keeps looping on core errors until the user quits.
func runInteractive(in io.Reader, w io.Writer, logger *slog.Logger, defaultWorkers int) error {
	sc := bufio.NewScanner(in)

	for {
		rowsA, ok := promptPositive(sc, w, "Enter the number of rows of Matrix A: ")
		if !ok {
			return nil // input exhausted
		}
		colsA, ok := promptPositive(sc, w, "Enter the number of cols of Matrix A: ")
		if !ok {
			return nil
		}
		rowsB, ok := promptPositive(sc, w, "Enter the number of rows of Matrix B: ")
		if !ok {
			return nil
		}
		colsB, ok := promptPositive(sc, w, "Enter the number of cols of Matrix B: ")
		if !ok {
			return nil
		}
		workers, ok := promptPositive(sc, w, fmt.Sprintf("Enter the number of workers [%d]: ", defaultWorkers))
		if !ok {
			return nil
		}

		// A failed round is reported and survived: the loop continues.
		if err := round(w, logger, rowsA, colsA, rowsB, colsB, workers); err != nil {
			fmt.Fprintln(w, err)
		}

		quit, ok := promptQuit(sc, w)
		if !ok || quit {
			return nil
		}
		fmt.Fprintln(w)
	}
}

// promptPositive asks until it reads an integer >= 1.
// The second return is false when the input stream ends.
func promptPositive(sc *bufio.Scanner, w io.Writer, info string) (int, bool) {
	fmt.Fprint(w, info)
	for sc.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil && n >= 1 {
			return n, true
		}
		fmt.Fprint(w, "Invalid input. "+info)
	}

	return 0, false
}

// promptQuit asks "Quit (Y/N)" until it reads either answer.
func promptQuit(sc *bufio.Scanner, w io.Writer) (quit, ok bool) {
	fmt.Fprint(w, "Quit (Y/N): ")
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		fmt.Fprint(w, "Invalid input: the input must be either Y or N. Quit (Y/N): ")
	}

	return false, false
}
