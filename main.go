package main

import (
	"flag"
	"kuhn/cfr"
	"kuhn/config"
	"kuhn/experiments"
	"kuhn/report"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// cliFlags holds the command line. Only flags given explicitly override the
// loaded config.
type cliFlags struct {
	set        *flag.FlagSet
	configPath string
	iterations int
	seed       uint64
	reportDir  string
	progress   bool
	sweep      int
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{set: flag.NewFlagSet("kuhn", flag.ContinueOnError)}
	f.set.StringVar(&f.configPath, "config", "", "Path to a YAML or TOML config file")
	f.set.IntVar(&f.iterations, "iterations", 0, "Number of CFR iterations (overrides config)")
	f.set.Uint64Var(&f.seed, "seed", 0, "Seed for the deal sampler (overrides config)")
	f.set.StringVar(&f.reportDir, "report-dir", "", "Directory for run artifacts (overrides config)")
	f.set.BoolVar(&f.progress, "progress", false, "Show a progress bar")
	f.set.IntVar(&f.sweep, "sweep", 0, "Train this many seeds in turn and print where each run ends up")
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *cliFlags) apply(cfg *config.Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "iterations":
			cfg.Iterations = f.iterations
		case "seed":
			cfg.Seed = f.seed
		case "report-dir":
			cfg.ReportDir = f.reportDir
		case "progress":
			cfg.Progress = f.progress
		}
	})
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	flags, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid command line")
		flags, _ = parseFlags(nil)
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default configuration")
		cfg = config.Default()
	}
	flags.apply(cfg)
	zerolog.SetGlobalLevel(cfg.Level())

	if flags.sweep > 0 {
		records, err := experiments.RunSeedSweep(cfg, flags.sweep)
		if err != nil {
			log.Error().Err(err).Msg("sweep finished with errors")
		}
		if err := report.PrintSweep(os.Stdout, records); err != nil {
			log.Error().Err(err).Msg("failed to print sweep")
		}
		return
	}

	var options []cfr.Option
	if cfg.Progress {
		bar := progressbar.NewOptions(cfg.Iterations,
			progressbar.OptionSetDescription("training"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		options = append(options, cfr.WithCallback(max(1, cfg.Iterations/1000), func(iteration int) {
			_ = bar.Set(iteration)
		}))
	}

	result, err := experiments.RunTraining(cfg, options...)
	if err != nil {
		log.Error().Err(err).Msg("run finished with errors")
	}
	if result == nil {
		return
	}

	if err := report.PrintTree(os.Stdout, result.Tree.Root); err != nil {
		log.Error().Err(err).Msg("failed to print tree")
	}
	if err := report.PrintSummary(os.Stdout, result.Tree.Store); err != nil {
		log.Error().Err(err).Msg("failed to print summary")
	}
}
