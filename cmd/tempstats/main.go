package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chrissnell/tempstats/internal/analysis"
	"github.com/chrissnell/tempstats/internal/app"
	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/pkg/config"
	"github.com/chrissnell/tempstats/pkg/responseformat"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	inputFile := flag.String("file", config.DefaultInputPath, "Path to the readings file")
	cfgFile := flag.String("config", "", "Optional YAML configuration file; flags given on the command line override it")
	format := flag.String("format", config.DefaultFormat, "Report format: 'text', 'json' or 'msgpack'")
	strict := flag.Bool("strict", false, "Fail on the first malformed line instead of skipping it")
	mode := flag.String("mode", config.DefaultModeName, "Mode tie handling: 'per-level' or 'legacy'")
	serve := flag.Bool("serve", false, "Serve reports over HTTP instead of printing one")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	logFile := flag.String("log-file", "", "Also write JSON logs to this file, rotated by size")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tempstats %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.InitWithFile(*debug, log.FileOptions{Path: *logFile, MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfgData, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	applyFlags(cfgData, set, *inputFile, *format, *mode, *strict)

	if *serve {
		application := app.New(config.NewStaticProvider(*cfgData), log.GetSugaredLogger())
		if err := application.Run(context.Background()); err != nil {
			log.Errorf("Application error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := report(context.Background(), cfgData, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (*config.ConfigData, error) {
	if cfgFile == "" {
		cfg := &config.ConfigData{}
		cfg.ApplyDefaults()
		return cfg, nil
	}

	filename, _ := filepath.Abs(cfgFile)
	cfgData, err := config.NewYAMLProvider(filename).LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}
	return cfgData, nil
}

// applyFlags overrides configuration values with the flags that were given
// explicitly on the command line.
func applyFlags(cfg *config.ConfigData, set map[string]bool, inputFile, format, mode string, strict bool) {
	if set["file"] {
		cfg.Input.Path = inputFile
	}
	if set["format"] {
		cfg.Output.Format = format
	}
	if set["mode"] {
		cfg.Stats.Mode = mode
	}
	if set["strict"] {
		cfg.Input.Strict = strict
	}
}

// report analyzes the configured readings file once and prints the result to
// w. An input without readings is not an error.
func report(ctx context.Context, cfg *config.ConfigData, w io.Writer) error {
	format, err := responseformat.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	opts, err := app.OptionsFromConfig(cfg.Input, cfg.Stats)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("error opening readings file: %w", err)
	}
	defer f.Close()

	formatter := responseformat.NewFormatter()

	rep, err := analysis.Run(ctx, f, opts)
	if errors.Is(err, analysis.ErrEmptyInput) {
		return formatter.WriteEmpty(w, format)
	}
	if err != nil {
		return err
	}

	return formatter.WriteReport(w, rep, format)
}
