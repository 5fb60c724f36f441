package analysis

import (
	"log/slog"
	"path/filepath"
	"time"

	"scar/internal/config"
	"scar/internal/graph"
	"scar/internal/parser"
	"scar/internal/resolver"
	"scar/internal/scanner"
	"scar/internal/shared/observability"
)

// Result is the immutable outcome of one pipeline run. Rankings are
// computed on demand; the engine itself holds no state between calls.
type Result struct {
	Root         string
	Graph        *graph.Graph
	Condensation *graph.Condensation
	Diagnostics  Diagnostics
	Duration     time.Duration
}

func (r *Result) TopFanIn(n int) []graph.Entry {
	return graph.TopFanIn(r.Graph, n)
}

func (r *Result) TopImpact(n int) []graph.Entry {
	return graph.TopImpact(r.Graph, r.Condensation, n)
}

func (r *Result) Empty() bool {
	return r.Graph.FileCount() == 0
}

// Run executes the full pipeline: discover, extract (parallel), resolve
// (parallel), build, condense. Only an invalid project path is fatal; an
// empty project yields an empty result and per-file failures degrade to
// diagnostics.
func Run(root string, cfg *config.Config) (*Result, error) {
	start := time.Now()

	s, err := scanner.New(root, cfg)
	if err != nil {
		return nil, err
	}

	files, err := timedPhase("scan", func() ([]string, error) { return s.Scan() })
	if err != nil {
		return nil, err
	}

	result := &Result{Root: s.Root(), Graph: graph.NewGraph()}
	if len(files) == 0 {
		slog.Warn("no source files discovered", "root", s.Root())
		result.Condensation = graph.Condense(result.Graph)
		result.Duration = time.Since(start)
		return result, nil
	}

	extractions, _ := timedPhase("extract", func() ([]parser.Extraction, error) {
		return parser.ExtractAll(files, cfg.Workers), nil
	})

	roots := searchRoots(s.Root(), cfg)
	res := resolver.New(files, roots)

	resolutions, _ := timedPhase("resolve", func() ([][]resolver.Resolution, error) {
		return resolveAll(res, extractions, cfg.Workers), nil
	})

	_, _ = timedPhase("build", func() (struct{}, error) {
		for _, ext := range extractions {
			result.Graph.AddFile(ext.File)
		}
		for i, ext := range extractions {
			if ext.Err != nil {
				slog.Warn("failed to read source file", "path", ext.File.Path, "error", ext.Err)
				result.Diagnostics.UnreadableFiles++
				observability.UnreadableFilesTotal.Inc()
				continue
			}
			for _, r := range resolutions[i] {
				result.Diagnostics.record(r)
				if r.Status == resolver.StatusResolved {
					result.Graph.AddEdge(r.Include.File, r.Path)
				}
			}
		}
		return struct{}{}, nil
	})

	cond, _ := timedPhase("condense", func() (*graph.Condensation, error) {
		return graph.Condense(result.Graph), nil
	})
	result.Condensation = cond
	result.Diagnostics.SelfIncludes = result.Graph.SelfIncludes()

	observability.GraphNodes.Set(float64(result.Graph.FileCount()))
	observability.GraphEdges.Set(float64(result.Graph.EdgeCount()))
	observability.GraphCycles.Set(float64(cond.MultiFileCycles()))

	result.Duration = time.Since(start)
	return result, nil
}

// searchRoots yields the deterministic root order: the project root first,
// then configured include roots in config order. Relative entries anchor
// at the project root. Roots that cannot be canonicalized are dropped with
// a warning; resolution then simply never matches them.
func searchRoots(projectRoot string, cfg *config.Config) []string {
	roots := []string{projectRoot}
	for _, r := range cfg.IncludeRoots {
		if !filepath.IsAbs(r) {
			r = filepath.Join(projectRoot, r)
		}
		canonical, err := scanner.Canonicalize(r)
		if err != nil {
			slog.Warn("dropping unusable include root", "root", r, "error", err)
			continue
		}
		roots = append(roots, canonical)
	}
	return roots
}

// resolveAll maps each extraction to its resolutions with a bounded pool.
// The resolver only reads immutable lookup state, so per-file resolution
// parallelizes the same way extraction does.
func resolveAll(res *resolver.Resolver, extractions []parser.Extraction, workers int) [][]resolver.Resolution {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(extractions) {
		workers = len(extractions)
	}

	out := make([][]resolver.Resolution, len(extractions))
	jobs := make(chan int)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				includes := extractions[i].Includes
				if len(includes) == 0 {
					continue
				}
				rs := make([]resolver.Resolution, 0, len(includes))
				for _, inc := range includes {
					rs = append(rs, res.Resolve(inc))
				}
				out[i] = rs
			}
			done <- struct{}{}
		}()
	}

	for i := range extractions {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	return out
}

func timedPhase[T any](name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	observability.PhaseDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return v, err
}
