package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects the core's operational counters. A nil *Recorder is a
// valid no-op receiver, so instrumentation stays optional for callers that
// don't run a Prometheus registry.
type Recorder struct {
	partitions     prometheus.Counter
	runoffMM       prometheus.Counter
	infiltrationMM prometheus.Counter
	calendars      prometheus.Counter
	calibrations   prometheus.Counter
	seasons        prometheus.Counter
}

// NewRecorder registers the collectors on reg and returns the recorder.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		partitions: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "hydrology", Name: "rainfall_partitions_total",
			Help: "Rainfall partition evaluations.",
		}),
		runoffMM: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "hydrology", Name: "runoff_mm_total",
			Help: "Cumulative surface runoff in mm.",
		}),
		infiltrationMM: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "hydrology", Name: "infiltration_mm_total",
			Help: "Cumulative infiltration in mm.",
		}),
		calendars: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "setup", Name: "calendars_built_total",
			Help: "Crop calendars finalised.",
		}),
		calibrations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "setup", Name: "fertility_calibrations_total",
			Help: "Soil fertility stress calibrations run.",
		}),
		seasons: f.NewCounter(prometheus.CounterOpts{
			Namespace: "aquacrop", Subsystem: "setup", Name: "seasons_scheduled_total",
			Help: "Growing seasons scheduled.",
		}),
	}
}

// ObservePartition records one rainfall partition outcome.
func (r *Recorder) ObservePartition(runoffMM, infiltrationMM float64) {
	if r == nil {
		return
	}
	r.partitions.Inc()
	r.runoffMM.Add(runoffMM)
	r.infiltrationMM.Add(infiltrationMM)
}

func (r *Recorder) CalendarBuilt() {
	if r == nil {
		return
	}
	r.calendars.Inc()
}

func (r *Recorder) CalibrationRun() {
	if r == nil {
		return
	}
	r.calibrations.Inc()
}

func (r *Recorder) SeasonsScheduled(n int) {
	if r == nil {
		return
	}
	r.seasons.Add(float64(n))
}
