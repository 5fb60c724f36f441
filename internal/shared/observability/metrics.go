package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scar_extraction_seconds",
		Help:    "Time spent extracting include directives from a source file.",
		Buckets: prometheus.DefBuckets,
	})

	PhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scar_phase_seconds",
		Help:    "Time spent in a pipeline phase.",
		Buckets: prometheus.DefBuckets,
	}, []string{"phase"})

	FilesScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scar_files_scanned_total",
		Help: "Total number of source files discovered across runs.",
	})

	UnreadableFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scar_unreadable_files_total",
		Help: "Total number of discovered files that could not be read.",
	})

	UnresolvedIncludesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scar_unresolved_includes_total",
		Help: "Total number of quoted includes that matched no discovered file.",
	})

	AmbiguousIncludesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scar_ambiguous_includes_total",
		Help: "Total number of includes matching more than one candidate file.",
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scar_graph_nodes_total",
		Help: "Number of nodes in the dependency graph after the last run.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scar_graph_edges_total",
		Help: "Number of edges in the dependency graph after the last run.",
	})

	GraphCycles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scar_graph_cycles_total",
		Help: "Number of multi-file include cycles after the last run.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scar_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
