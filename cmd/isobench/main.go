// Command isobench compares the cost of composing, inverting and applying
// three representations of a 3D rigid transform: a quaternion isometry, a
// rotation-matrix isometry and a generic 4×4 affine transform.
//
// With no arguments it runs 1000 outer samples of 100000 iterations each and
// prints one "<Representation> took <seconds> seconds" line per
// representation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/banshee-data/isometry-bench/internal/bench"
	"github.com/banshee-data/isometry-bench/internal/config"
	"github.com/banshee-data/isometry-bench/internal/db"
	"github.com/banshee-data/isometry-bench/internal/monitoring"
	"github.com/banshee-data/isometry-bench/internal/report"
	"github.com/banshee-data/isometry-bench/internal/sample"
	"github.com/banshee-data/isometry-bench/internal/timeutil"
	"github.com/banshee-data/isometry-bench/internal/version"
)

// Config holds the command-line configuration.
type Config struct {
	ConfigFile   string
	TotalSamples int
	SubSamples   int
	Seed         uint64
	Verify       bool
	Stats        bool
	OutputJSON   string
	OutputPlot   string
	OutputHTML   string
	DBPath       string
	History      int
	ShowVersion  bool

	// set records which flags appeared on the command line; only those
	// override the config file.
	set map[string]bool
}

func main() {
	if _, ok := os.LookupEnv(monitoring.EnvLogLevel); !ok {
		os.Setenv(monitoring.EnvLogLevel, "info")
	}
	monitoring.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Fatalf("isobench: %v", err)
	}
}

func parseFlags(args []string) (Config, error) {
	cfg := Config{set: make(map[string]bool)}
	defaults := bench.DefaultConfig()

	fs := flag.NewFlagSet("isobench", flag.ContinueOnError)
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a JSON benchmark config file")
	fs.IntVar(&cfg.TotalSamples, "samples", defaults.TotalSamples, "Number of outer samples (fresh transform pairs)")
	fs.IntVar(&cfg.SubSamples, "sub-samples", defaults.SubSamples, "Timed iterations per representation per sample")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for the random source (random when unset)")
	fs.BoolVar(&cfg.Verify, "verify", false, "Check inverse and cross-representation identities once per sample")
	fs.BoolVar(&cfg.Stats, "stats", false, "Log per-representation statistics to stderr")
	fs.StringVar(&cfg.OutputJSON, "json", "", "Write the result summary to this JSON file")
	fs.StringVar(&cfg.OutputPlot, "plot", "", "Write a bar chart of the totals to this image file (.png, .svg, .pdf)")
	fs.StringVar(&cfg.OutputHTML, "html", "", "Write an interactive bar chart page to this HTML file")
	fs.StringVar(&cfg.DBPath, "db", "", "Record the run in this SQLite database")
	fs.IntVar(&cfg.History, "history", 0, "Log the N most recent runs from -db after recording")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	if cfg.History < 0 {
		return cfg, fmt.Errorf("-history must be non-negative, got %d", cfg.History)
	}
	if cfg.History > 0 && cfg.DBPath == "" {
		return cfg, errors.New("-history requires -db")
	}
	return cfg, nil
}

// runConfig merges the config file (if any) with explicitly set flags.
func runConfig(cfg Config) (bench.Config, *sample.Generator, error) {
	fileCfg := config.EmptyBenchConfig()
	if cfg.ConfigFile != "" {
		var err error
		if fileCfg, err = config.LoadBenchConfig(cfg.ConfigFile); err != nil {
			return bench.Config{}, nil, err
		}
	}
	if lvl := fileCfg.GetLogLevel(); lvl != "" {
		l, _ := monitoring.ParseLevel(lvl) // validated on load
		monitoring.SetLevel(l)
	}

	runCfg := fileCfg.BenchRunConfig()
	if cfg.set["samples"] {
		runCfg.TotalSamples = cfg.TotalSamples
	}
	if cfg.set["sub-samples"] {
		runCfg.SubSamples = cfg.SubSamples
	}
	if cfg.set["verify"] {
		runCfg.Verify = cfg.Verify
	}
	if err := runCfg.Validate(); err != nil {
		return bench.Config{}, nil, err
	}

	var gen *sample.Generator
	if cfg.set["seed"] {
		gen = sample.NewGenerator(cfg.Seed)
	} else if seed, ok := fileCfg.GetSeed(); ok {
		gen = sample.NewGenerator(seed)
	} else {
		gen = sample.NewRandomGenerator()
	}
	return runCfg, gen, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	runCfg, gen, err := runConfig(cfg)
	if err != nil {
		return err
	}

	res, runErr := bench.NewRunner(runCfg, gen, timeutil.RealClock{}).Run(ctx)
	if res == nil {
		return runErr
	}
	if runErr != nil {
		monitoring.Warnf("run interrupted after %d of %d samples; totals are partial", res.TotalSamples, runCfg.TotalSamples)
	}

	if err := report.WriteTotals(stdout, res); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}
	if cfg.Stats {
		report.LogStats(res)
	}
	if err := writeOutputs(cfg, res); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if res.VerifyFailures > 0 {
		monitoring.Warnf("%d of %d samples failed verification", res.VerifyFailures, res.Verified)
	}

	if cfg.DBPath != "" {
		if err := recordRun(ctx, cfg, res); err != nil {
			return err
		}
	}
	return nil
}

func writeOutputs(cfg Config, res *bench.Result) error {
	if cfg.OutputJSON != "" {
		if err := report.ExportJSON(res, cfg.OutputJSON); err != nil {
			return err
		}
		monitoring.Infof("Results exported to: %s", cfg.OutputJSON)
	}
	if cfg.OutputPlot != "" {
		if err := report.WritePlot(res, cfg.OutputPlot); err != nil {
			return err
		}
		monitoring.Infof("Plot written to: %s", cfg.OutputPlot)
	}
	if cfg.OutputHTML != "" {
		if err := report.WriteHTMLFile(res, cfg.OutputHTML); err != nil {
			return err
		}
		monitoring.Infof("Chart written to: %s", cfg.OutputHTML)
	}
	return nil
}

func recordRun(ctx context.Context, cfg Config, res *bench.Result) error {
	store, err := db.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer store.Close()

	if err := store.RecordRun(ctx, res); err != nil {
		return err
	}
	monitoring.Infof("Run %s recorded in %s", res.RunID, cfg.DBPath)

	if cfg.History == 0 {
		return nil
	}
	runs, err := store.ListRuns(ctx, cfg.History)
	if err != nil {
		return err
	}
	for _, r := range runs {
		line := fmt.Sprintf("%s %s seed=%d %dx%d", r.StartedAt.Format("2006-01-02T15:04:05Z07:00"), r.RunID, r.Seed, r.TotalSamples, r.SubSamples)
		for _, t := range r.Timings {
			line += fmt.Sprintf(" %s=%.6fs", t.Representation, t.Total.Seconds())
		}
		monitoring.Infof("%s", line)
	}
	return nil
}
