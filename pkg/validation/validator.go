// Package validation scans road graphs for data-quality problems before
// routing computations run on them. Anomalies are report entries, not
// errors: an empty report means the graph passed every enabled check, and
// only a broken graph accessor turns into an error.
package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-roadgraph/pkg/graph"
)

// Coordinate bounds in degrees (WGS84).
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// GetProblems scans g with the default configuration and returns one
// human-readable message per detected anomaly, ordered by node ID with the
// latitude check before the longitude check. The result is never nil; an
// empty slice means the graph is sound. The graph is not mutated.
func GetProblems(g graph.Graph) []string {
	v := &Validator{cfg: DefaultConfig()}
	problems, _, _ := v.collect(g)
	return problems
}

// Report is the outcome of one validation run.
type Report struct {
	// ID identifies this run in logs and downstream tooling.
	ID uuid.UUID
	// Problems holds one message per anomaly, in scan order.
	Problems []string
	// Counts breaks Problems down by check name.
	Counts map[string]int
	// Duration is the wall time the scan took.
	Duration time.Duration
}

// OK reports whether the run found no problems.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Validator runs a configured set of integrity checks.
type Validator struct {
	cfg Config
}

// New creates a Validator after validating its configuration.
func New(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validator config: %w", err)
	}
	return &Validator{cfg: cfg}, nil
}

// Run scans g and returns a report. Run fails only when the graph accessor
// itself fails; data-quality findings land in the report.
func (v *Validator) Run(g graph.Graph) (*Report, error) {
	start := time.Now()
	problems, counts, err := v.collect(g)
	if err != nil {
		return nil, err
	}
	return &Report{
		ID:       uuid.New(),
		Problems: problems,
		Counts:   counts,
		Duration: time.Since(start),
	}, nil
}

// collect runs every enabled check. Checks are independent: one finding
// never suppresses another.
func (v *Validator) collect(g graph.Graph) ([]string, map[string]int, error) {
	problems := make([]string, 0)
	counts := make(map[string]int)

	full := func() bool {
		return v.cfg.MaxProblems > 0 && len(problems) >= v.cfg.MaxProblems
	}
	report := func(check, msg string) {
		if full() {
			return
		}
		problems = append(problems, msg)
		counts[check]++
	}

	na := g.NodeAccess()
	nodes := g.NodeCount()
	for node := 0; node < nodes && !full(); node++ {
		lat := na.Latitude(node)
		if lat < MinLatitude || lat > MaxLatitude {
			report(CheckLatitude, fmt.Sprintf("node %d: latitude is not within its bounds: %g", node, lat))
		}
		lon := na.Longitude(node)
		if lon < MinLongitude || lon > MaxLongitude {
			report(CheckLongitude, fmt.Sprintf("node %d: longitude is not within its bounds: %g", node, lon))
		}
	}

	if v.cfg.CheckDistances {
		edges := g.EdgeCount()
		for edgeID := 0; edgeID < edges && !full(); edgeID++ {
			distance, err := g.EdgeDistance(edgeID)
			if err != nil {
				return nil, nil, fmt.Errorf("read distance of edge %d: %w", edgeID, err)
			}
			if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
				report(CheckDistance, fmt.Sprintf("edge %d: distance is not valid: %g", edgeID, distance))
			}
		}
	}

	if v.cfg.CheckEndpoints {
		explorer := g.CreateEdgeExplorer()
		for node := 0; node < nodes && !full(); node++ {
			iter := explorer.SetBaseNode(node)
			for iter.Next() {
				adj := iter.AdjNode()
				if adj < 0 || adj >= nodes {
					report(CheckEndpoint, fmt.Sprintf("edge %d at node %d: adjacent node %d does not exist", iter.EdgeID(), node, adj))
				}
			}
		}
	}

	return problems, counts, nil
}
