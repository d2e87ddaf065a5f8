package vector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumentation holds Prometheus counters that vectors update when they
// reallocate. One Instrumentation may be shared by many vectors; the
// counters themselves are safe for concurrent use.
type Instrumentation struct {
	reallocations      prometheus.Counter
	relocated          *prometheus.CounterVec
	relocationFailures *prometheus.CounterVec
	allocatedBytes     prometheus.Counter
}

// NewInstrumentation creates the counters and registers them with reg.
// A nil reg creates unregistered counters.
func NewInstrumentation(reg prometheus.Registerer, namespace string) *Instrumentation {
	return &Instrumentation{
		reallocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_reallocations_total",
			Help:      "Total number of times a vector replaced its backing block.",
		}),
		relocated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_relocated_elements_total",
			Help:      "Total number of elements carried into a new block, by strategy.",
		}, []string{"strategy"}),
		relocationFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_relocation_failures_total",
			Help:      "Total number of reallocations abandoned because an element failed to relocate.",
		}, []string{"op"}),
		allocatedBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_allocated_bytes_total",
			Help:      "Total number of bytes of backing blocks adopted by vectors.",
		}),
	}
}

func (i *Instrumentation) observeRealloc(bytes int, s strategy, relocated int) {
	i.reallocations.Inc()
	i.allocatedBytes.Add(float64(bytes))
	i.relocated.WithLabelValues(s.String()).Add(float64(relocated))
}

func (i *Instrumentation) observeFailure(op string) {
	i.relocationFailures.WithLabelValues(op).Inc()
}
