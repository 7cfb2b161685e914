// roadgraph-check validates a road-graph snapshot and reports data-quality
// problems. Exit code 0 means the graph is sound, 1 means problems were
// found or the run failed, 2 means bad usage.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/dd0wney/cluso-roadgraph/pkg/logging"
	"github.com/dd0wney/cluso-roadgraph/pkg/metrics"
	"github.com/dd0wney/cluso-roadgraph/pkg/validation"
)

func main() {
	snapshotPath := flag.String("graph", "", "Path to YAML graph snapshot")
	checkDistances := flag.Bool("check-distances", false, "Also check edge distances for NaN/negative values")
	checkEndpoints := flag.Bool("check-endpoints", false, "Also check edges for dangling endpoints")
	maxProblems := flag.Int("max-problems", 0, "Stop after this many problems (0 = unlimited)")
	listen := flag.String("listen", "", "Serve Prometheus metrics on this address after validating")
	flag.Parse()

	logger := logging.NewDefaultLogger().With(logging.Component("roadgraph-check"))

	if *snapshotPath == "" {
		logger.Error("missing required flag", logging.String("flag", "-graph"))
		flag.Usage()
		os.Exit(2)
	}

	snap, err := loadSnapshot(*snapshotPath)
	if err != nil {
		logger.Error("failed to load snapshot", logging.Path(*snapshotPath), logging.Error(err))
		os.Exit(1)
	}

	cfg := validation.DefaultConfig()
	if snap.Validation != nil {
		cfg = *snap.Validation
	}
	// Explicit flags win over the snapshot's embedded config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "check-distances":
			cfg.CheckDistances = *checkDistances
		case "check-endpoints":
			cfg.CheckEndpoints = *checkEndpoints
		case "max-problems":
			cfg.MaxProblems = *maxProblems
		}
	})

	timer := logging.StartTimer(logger, "graph loaded", logging.Path(*snapshotPath))
	g, err := buildGraph(snap)
	if err != nil {
		timer.EndError(err)
		os.Exit(1)
	}
	stats := g.Stats()
	timer.End()
	logger.Info("graph ready",
		logging.NodeCount(stats.NodeCount),
		logging.EdgeCount(stats.EdgeCount),
	)

	registry := metrics.DefaultRegistry()
	registry.UpdateGraphSize(stats)

	v, err := validation.New(cfg)
	if err != nil {
		logger.Error("invalid validation config", logging.Error(err))
		os.Exit(2)
	}

	report, err := v.Run(g)
	if err != nil {
		registry.RecordValidationError(0)
		logger.Error("validation failed", logging.Error(err))
		os.Exit(1)
	}
	registry.RecordValidation(report)

	for _, problem := range report.Problems {
		logger.Warn("problem found", logging.String("problem", problem))
	}
	logger.Info("validation finished",
		logging.String("report_id", report.ID.String()),
		logging.ProblemCount(len(report.Problems)),
		logging.Latency(report.Duration),
	)

	if *listen != "" {
		logger.Info("serving metrics", logging.String("addr", *listen))
		http.Handle("/metrics", registry.Handler())
		if err := http.ListenAndServe(*listen, nil); err != nil {
			logger.Error("metrics server failed", logging.Error(err))
			os.Exit(1)
		}
	}

	if !report.OK() {
		os.Exit(1)
	}
}
