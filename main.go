package main

import (
	"flag"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"messenger-rle/harness"
)

const (
	EXIT_OK     = 0
	EXIT_FAILED = 1
	EXIT_USAGE  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("messenger-rle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "path to a YAML harness config")
		runs       = fs.Int("runs", harness.DEFAULT_RUNS, "number of round-trip tests")
		size       = fs.Int("size", harness.DEFAULT_DATA_SIZE, "bytes per test buffer")
		seed       = fs.Uint64("seed", 0, "random seed, 0 for time based")
		quiet      = fs.Bool("quiet", false, "do not print buffers")
		debug      = fs.Bool("debug", false, "enable debug logging")
		metricsOut = fs.String("metrics-out", "", "write Prometheus metrics to this file when done")
	)
	if err := fs.Parse(args); err != nil {
		return EXIT_USAGE
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if *debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg := harness.DefaultConfig()
	if *configPath != "" {
		loaded, err := harness.LoadConfig(*configPath)
		if err != nil {
			level.Error(logger).Log("msg", "failed to load config", "path", *configPath, "err", err)
			return EXIT_USAGE
		}
		cfg = loaded
	}

	// explicit flags win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "runs":
			cfg.Runs = *runs
		case "size":
			cfg.DataSize = *size
		case "seed":
			cfg.Seed = *seed
		case "quiet":
			cfg.PrintData = !*quiet
		}
	})

	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid config", "err", err)
		return EXIT_USAGE
	}

	reg := prometheus.NewRegistry()
	h, err := harness.New(cfg, logger, stdout, reg)
	if err != nil {
		level.Error(logger).Log("msg", "failed to create harness", "err", err)
		return EXIT_USAGE
	}

	summary, err := h.RunTests()
	if err != nil {
		level.Error(logger).Log("msg", "test run aborted", "err", err)
		return EXIT_FAILED
	}

	if *metricsOut != "" {
		if err := prometheus.WriteToTextfile(*metricsOut, reg); err != nil {
			level.Error(logger).Log("msg", "failed to write metrics", "path", *metricsOut, "err", err)
			return EXIT_FAILED
		}
	}

	if summary.Failed > 0 {
		level.Warn(logger).Log("msg", "round trip validation failed", "failed", summary.Failed, "runs", summary.Runs)
		return EXIT_FAILED
	}

	return EXIT_OK
}
