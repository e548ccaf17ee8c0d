package index

import (
	"github.com/prometheus/client_golang/prometheus"
)

var compactionCount = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "d2go",
	Subsystem: "index",
	Name:      "compactions_total",
	Help:      "Number of Compact calls across all indexes.",
})

var compactedVersionCount = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "d2go",
	Subsystem: "index",
	Name:      "compacted_versions_total",
	Help:      "Number of version buckets collapsed into the frontier.",
})

// RegisterMetrics registers the index metrics with the given registerer.
// Call at most once per registry; typically with
// prometheus.DefaultRegisterer from the embedding process.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(compactionCount, compactedVersionCount)
}
