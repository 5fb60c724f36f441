package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scar/internal/analysis"
	"scar/internal/config"
	"scar/internal/history"
	"scar/internal/report"
	"scar/internal/shared/observability"
	"scar/internal/watcher"
)

const (
	ModeTopN       = "topn"
	ModeTopNImpact = "topn-impact"
)

type App struct {
	Config *config.Config
	Root   string
	Modes  []string
	N      int

	store      *history.Store
	obsServer  *observability.Server
	fsWatcher  *watcher.Watcher
	teaProgram *tea.Program

	lastSummary  report.Summary
	lastRankings []report.Ranking
}

func NewApp(cfg *config.Config, root string, modes []string, n int) (*App, error) {
	a := &App{
		Config: cfg,
		Root:   root,
		Modes:  modes,
		N:      n,
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		a.store = store
	}

	return a, nil
}

func (a *App) StartObservability(addr string) {
	a.obsServer = observability.NewServer(addr)
	if err := a.obsServer.Start(); err != nil {
		slog.Warn("failed to start observability server", "error", err)
	}
}

// RunOnce executes the pipeline and fans the result out to every sink:
// terminal report, TSV/DOT files, history snapshot, UI refresh.
func (a *App) RunOnce() error {
	result, err := analysis.Run(a.Root, a.Config)
	if err != nil {
		if a.obsServer != nil {
			a.obsServer.RecordRun(0, false)
		}
		return err
	}

	rankings := a.buildRankings(result)
	summary := buildSummary(result)
	a.lastSummary = summary
	a.lastRankings = rankings

	if a.Config.Alerts.Terminal && a.teaProgram == nil {
		fmt.Print(report.RenderText(summary, rankings))
	}

	a.generateOutputs(result, rankings)
	a.saveSnapshot(result)

	if a.obsServer != nil {
		a.obsServer.RecordRun(result.Graph.FileCount(), true)
	}

	if a.teaProgram != nil {
		a.teaProgram.Send(updateMsg{summary: summary, rankings: rankings})
	}

	return nil
}

func (a *App) buildRankings(result *analysis.Result) []report.Ranking {
	rankings := make([]report.Ranking, 0, len(a.Modes))
	for _, mode := range a.Modes {
		switch mode {
		case ModeTopN:
			rankings = append(rankings, report.Ranking{Mode: mode, Entries: result.TopFanIn(a.N)})
		case ModeTopNImpact:
			rankings = append(rankings, report.Ranking{Mode: mode, Entries: result.TopImpact(a.N)})
		}
	}
	return rankings
}

func buildSummary(result *analysis.Result) report.Summary {
	return report.Summary{
		Root:            result.Root,
		FileCount:       result.Graph.FileCount(),
		EdgeCount:       result.Graph.EdgeCount(),
		ComponentCount:  result.Condensation.ComponentCount(),
		MultiFileCycles: result.Condensation.MultiFileCycles(),
		UnresolvedLocal: result.Diagnostics.UnresolvedLocalCount(),
		Ambiguous:       result.Diagnostics.Ambiguous,
		UnreadableFiles: result.Diagnostics.UnreadableFiles,
		SelfIncludes:    result.Diagnostics.SelfIncludes,
		Duration:        result.Duration,
	}
}

func (a *App) generateOutputs(result *analysis.Result, rankings []report.Ranking) {
	if a.Config.Output.TSV != "" {
		content, err := report.NewTSVGenerator(rankings).Generate()
		if err == nil {
			err = os.WriteFile(a.Config.Output.TSV, []byte(content), 0644)
		}
		if err != nil {
			slog.Error("failed to write TSV output", "path", a.Config.Output.TSV, "error", err)
		}
	}

	if a.Config.Output.DOT != "" {
		content, err := report.NewDOTGenerator(result.Graph, result.Condensation).Generate()
		if err == nil {
			err = os.WriteFile(a.Config.Output.DOT, []byte(content), 0644)
		}
		if err != nil {
			slog.Error("failed to write DOT output", "path", a.Config.Output.DOT, "error", err)
		}
	}
}

func (a *App) saveSnapshot(result *analysis.Result) {
	if a.store == nil {
		return
	}

	snapshot := history.Snapshot{
		Root:            result.Root,
		FileCount:       result.Graph.FileCount(),
		EdgeCount:       result.Graph.EdgeCount(),
		ComponentCount:  result.Condensation.ComponentCount(),
		CycleCount:      result.Condensation.MultiFileCycles(),
		UnresolvedCount: result.Diagnostics.UnresolvedLocalCount(),
		AmbiguousCount:  result.Diagnostics.Ambiguous,
		UnreadableCount: result.Diagnostics.UnreadableFiles,
	}
	if top := result.TopFanIn(1); len(top) > 0 {
		snapshot.MaxFanIn = top[0].Score
	}
	if top := result.TopImpact(1); len(top) > 0 {
		snapshot.MaxImpact = top[0].Score
	}

	if _, err := a.store.SaveSnapshot(snapshot); err != nil {
		slog.Warn("failed to save history snapshot", "error", err)
	}
}

// StartWatcher re-runs the whole pipeline after debounced file changes.
// The engine is single-shot; there is no incremental graph mutation, so a
// change set of any size triggers one fresh run.
func (a *App) StartWatcher() error {
	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		a.Config.Extensions,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		func(paths []string) {
			slog.Info("change detected, re-running analysis", "changed", len(paths))
			start := time.Now()
			if err := a.RunOnce(); err != nil {
				slog.Error("re-analysis failed", "error", err)
				return
			}
			slog.Debug("re-analysis complete", "duration", time.Since(start))
		},
	)
	if err != nil {
		return err
	}
	a.fsWatcher = w
	return w.Watch(a.Root)
}

func (a *App) Close() {
	if a.fsWatcher != nil {
		_ = a.fsWatcher.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
}
