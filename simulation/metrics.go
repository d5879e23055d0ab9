package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure stages reported in Metrics.Failures.
const (
	StageTrial  = "trial"
	StageSelect = "select"
	StageAccept = "accept"
	StagePath   = "path"
)

// Metrics counts growth activity. All fields are safe for concurrent use, so one
// Metrics may be shared by replicas.
type Metrics struct {
	Trials         prometheus.Counter
	Accepted       prometheus.Counter
	Failures       *prometheus.CounterVec
	Rings          prometheus.Gauge
	Energy         prometheus.Gauge
	TrialEnergy    prometheus.Histogram
	RingSizeChosen *prometheus.CounterVec
}

// NewMetrics registers the growth metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Trials: f.NewCounter(prometheus.CounterOpts{
			Name: "mx2_ring_trials_total",
			Help: "Total number of trial rings built, optimised and rolled back.",
		}),
		Accepted: f.NewCounter(prometheus.CounterOpts{
			Name: "mx2_rings_accepted_total",
			Help: "Total number of rings committed to a network.",
		}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mx2_growth_failures_total",
			Help: "Total number of failed growth operations, labelled by stage.",
		}, []string{"stage"}),
		Rings: f.NewGauge(prometheus.GaugeOpts{
			Name: "mx2_network_rings",
			Help: "Ring count of the most recently grown network.",
		}),
		Energy: f.NewGauge(prometheus.GaugeOpts{
			Name: "mx2_network_energy",
			Help: "Energy reported by the last accepted optimisation.",
		}),
		TrialEnergy: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mx2_trial_energy",
			Help:    "Local-region energy of trial rings.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 10),
		}),
		RingSizeChosen: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mx2_ring_size_chosen_total",
			Help: "Total number of accepted rings, labelled by ring size.",
		}, []string{"size"}),
	}
}
