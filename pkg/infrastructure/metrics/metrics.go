package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	promdto "github.com/prometheus/client_model/go"
)

// Result labels for catalog operations
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
)

// Recorder collects catalog operation counters and collection sizes on a
// private registry
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	entities   *prometheus.GaugeVec
	lookups    *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "operations_total",
			Help:      "Catalog operations by entity, operation and result.",
		}, []string{"entity", "operation", "result"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "catalog",
			Name:      "entities",
			Help:      "Number of stored entities by kind.",
		}, []string{"entity"}),
		lookups: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "lookup_results",
			Help:      "Number of entities returned per lookup.",
			Buckets:   []float64{0, 1, 2, 5, 10, 50, 100},
		}, []string{"entity"}),
	}
	r.registry.MustRegister(r.operations, r.entities, r.lookups)
	return r
}

// Operation counts one catalog operation
func (r *Recorder) Operation(entity, operation, result string) {
	r.operations.WithLabelValues(entity, operation, result).Inc()
}

// Entities sets the current size of a collection
func (r *Recorder) Entities(entity string, count int) {
	r.entities.WithLabelValues(entity).Set(float64(count))
}

// Lookup observes how many entities a lookup returned
func (r *Recorder) Lookup(entity string, results int) {
	r.lookups.WithLabelValues(entity).Observe(float64(results))
}

// Sample is one gathered series value
type Sample struct {
	Name   string            `json:"name" yaml:"name"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Value  float64           `json:"value" yaml:"value"`
}

// String renders the sample in exposition style, labels sorted by name
func (s Sample) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if len(s.Labels) > 0 {
		keys := make([]string, 0, len(s.Labels))
		for k := range s.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%s=%q", k, s.Labels[k])
		}
		b.WriteByte('}')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(s.Value, 'g', -1, 64))
	return b.String()
}

// Snapshot gathers the registry into samples ordered by family name.
// Histograms contribute their observation count as <name>_count.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			sample := Sample{Name: family.GetName(), Labels: labelsOf(m)}
			switch family.GetType() {
			case promdto.MetricType_COUNTER:
				sample.Value = m.GetCounter().GetValue()
			case promdto.MetricType_GAUGE:
				sample.Value = m.GetGauge().GetValue()
			case promdto.MetricType_HISTOGRAM:
				sample.Name += "_count"
				sample.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, sample)
		}
	}
	return samples, nil
}

func labelsOf(m *promdto.Metric) map[string]string {
	pairs := m.GetLabel()
	if len(pairs) == 0 {
		return nil
	}
	labels := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		labels[pair.GetName()] = pair.GetValue()
	}
	return labels
}

// Nop discards everything
type Nop struct{}

func (Nop) Operation(string, string, string) {}
func (Nop) Entities(string, int)             {}
func (Nop) Lookup(string, int)               {}
