package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"scar/internal/config"
)

var (
	projectPath = flag.String("path", "", "Project path to analyze (required)")
	topN        = flag.Bool("topn", false, "Rank files by direct dependents")
	topNImpact  = flag.Bool("topnimpact", false, "Rank files by transitive change impact")
	num         = flag.Int("num", 42, "Max number of ranked entries to report")
	configPath  = flag.String("config", "./scar.toml", "Path to config file")
	watch       = flag.Bool("watch", false, "Re-run analysis when source files change")
	ui          = flag.Bool("ui", false, "Enable terminal UI mode")
	metricsAddr = flag.String("metrics", "", "Address for the /metrics and /health listener (e.g. :9090)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("scar v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stdout
	if *ui {
		// In UI mode, avoid stdout logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
			output = f
		} else {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	root := *projectPath
	if root == "" && flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	if root == "" {
		fmt.Fprintln(os.Stderr, "a project path is required: scar -path <dir>")
		os.Exit(1)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	// Both mode flags off means both analyses run, matching one scan
	// feeding every requested ranking.
	modes := selectedModes(*topN, *topNImpact)

	app, err := NewApp(cfg, root, modes, *num)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if *metricsAddr != "" {
		app.StartObservability(*metricsAddr)
	}

	if err := app.RunOnce(); err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if !*watch && !*ui {
		return
	}

	if *watch {
		if err := app.StartWatcher(); err != nil {
			slog.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
	}

	if *ui {
		if err := app.RunUI(); err != nil {
			slog.Error("failed to run UI", "error", err)
			os.Exit(1)
		}
	} else {
		// Watch mode without UI blocks forever.
		select {}
	}
}

func selectedModes(topN, topNImpact bool) []string {
	if !topN && !topNImpact {
		return []string{ModeTopN, ModeTopNImpact}
	}
	var modes []string
	if topN {
		modes = append(modes, ModeTopN)
	}
	if topNImpact {
		modes = append(modes, ModeTopNImpact)
	}
	return modes
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "scar", "scar.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "scar", "scar.log")
	}

	return "scar.log"
}
