// Command rule-sweep evolves every rule in a list over a range of seeds,
// classifies each run and prints a per-run table plus an outcome tally.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ndca/internal/classify"
	"ndca/internal/experiment"
	"ndca/internal/rule"
	"ndca/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "rule-sweep:", err)
		}
		os.Exit(1)
	}
}

// run parses args, sweeps and writes the report to stdout. The store is
// closed on every return path once it has been opened.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("rule-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	base := experiment.DefaultConfig()
	defaults := base.ToMap()
	params := map[string]string{}
	bindString := func(key, usage string) {
		fs.Func(key, usage+" (default "+defaults[key]+")", func(v string) error {
			params[key] = v
			return nil
		})
	}
	bindString("dims", "grid shape, e.g. 64x64 or 16x16x16")
	bindString("topology", "moore or von_neumann")
	bindString("range", "neighborhood range")
	bindString("density", "initial live-cell probability")
	bindString("steps", "generations per run")
	bindString("interval", "metrics sampling interval")

	rules := fs.String("rules", "B3/S23 B36/S23 B2/S B3678/S34678 B1357/S1357", "space separated rules in B/S notation")
	seed := fs.Int64("seed", base.Seed, "first seed")
	seeds := fs.Int("seeds", 4, "number of consecutive seeds per rule")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	storeKind := fs.String("store", storage.KindMemory, "result store: memory or sqlite")
	dbPath := fs.String("db", "ndca.db", "sqlite database path")
	verbose := fs.Bool("v", false, "log every finished experiment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	base, err = experiment.FromMap(params)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfgs, err := buildConfigs(base, strings.Fields(*rules), *seed, *seeds)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("init %s store: %w", *storeKind, err)
	}
	defer func() {
		if cerr := storage.CloseStore(store); cerr != nil && err == nil {
			err = fmt.Errorf("close %s store: %w", *storeKind, cerr)
		}
	}()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	runner := &experiment.Runner{
		Workers: *workers,
		Logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).With(slog.String("component", "rule-sweep")),
		Store:   store,
	}

	cells := 1
	for _, d := range base.Dimensions {
		cells *= d
	}
	fmt.Fprintf(stdout, "Sweeping %d runs on %s (%s cells, %d workers, %d steps)\n",
		len(cfgs), experiment.FormatDims(base.Dimensions), humanize.Comma(int64(cells)), *workers, base.Steps)

	start := time.Now()
	results, err := runner.RunAll(ctx, cfgs)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	printReport(stdout, results, time.Since(start))
	return nil
}

// buildConfigs expands base into one config per rule and seed, in rule-major
// order.
func buildConfigs(base experiment.Config, rules []string, firstSeed int64, seeds int) ([]experiment.Config, error) {
	if seeds < 1 {
		return nil, fmt.Errorf("seeds must be at least 1, got %d", seeds)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules given")
	}
	var out []experiment.Config
	for _, notation := range rules {
		birth, survival, err := rule.ParseNotation(notation)
		if err != nil {
			return nil, err
		}
		for i := 0; i < seeds; i++ {
			cfg := base
			cfg.Birth, cfg.Survival = birth, survival
			cfg.Seed = firstSeed + int64(i)
			out = append(out, cfg)
		}
	}
	return out, nil
}

type tallyRow struct {
	outcome classify.Outcome
	class   classify.WolframClass
	count   int
}

// tally counts results per outcome and class, most frequent first.
func tally(results []experiment.Result) []tallyRow {
	counts := map[[2]string]int{}
	for _, res := range results {
		c := res.Classification
		counts[[2]string{string(c.Outcome), string(c.Class)}]++
	}
	rows := make([]tallyRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, tallyRow{outcome: classify.Outcome(k[0]), class: classify.WolframClass(k[1]), count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		if rows[i].outcome != rows[j].outcome {
			return rows[i].outcome < rows[j].outcome
		}
		return rows[i].class < rows[j].class
	})
	return rows
}

func printReport(w io.Writer, results []experiment.Result, elapsed time.Duration) {
	updates := int64(0)
	for _, res := range results {
		updates += int64(res.FinalGrid.Len()) * int64(res.Steps)
	}
	fmt.Fprintf(w, "\n%-16s %6s %12s %-12s %-16s %5s  %s\n", "rule", "seed", "population", "outcome", "class", "conf", "reason")
	for _, res := range results {
		pop := 0
		if n := len(res.History); n > 0 {
			pop = res.History[n-1].Population
		}
		c := res.Classification
		fmt.Fprintf(w, "%-16s %6d %12s %-12s %-16s %5.2f  %s\n",
			res.Rule.String(), res.Config.Seed, humanize.Comma(int64(pop)), c.Outcome, c.Class, c.Confidence, c.Reason)
	}

	fmt.Fprintf(w, "\nOutcomes (%d runs, %s cell updates, elapsed %s):\n",
		len(results), humanize.Comma(updates), elapsed.Round(time.Millisecond))
	for _, row := range tally(results) {
		fmt.Fprintf(w, "%4d  %-12s %s\n", row.count, row.outcome, row.class)
	}
}
