package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the telemetry facade for the simulation
// Owners cache metric pointers at construction; hot paths write atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// Metric is a formatted reading for display
type Metric struct {
	Key   string
	Value string
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot formats every metric, ints first, then floats, then bools, each sorted by key
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{Key: key, Value: strconv.FormatFloat(v.Load(), 'f', 2, 64)})
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		out = append(out, Metric{Key: key, Value: strconv.FormatBool(v.Load())})
	})
	return out
}
