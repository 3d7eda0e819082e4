package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.ObservePartition(2.5, 17.5)
	r.ObservePartition(0, 4.0)
	r.CalendarBuilt()
	r.CalibrationRun()
	r.SeasonsScheduled(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.partitions))
	assert.Equal(t, 2.5, testutil.ToFloat64(r.runoffMM))
	assert.Equal(t, 21.5, testutil.ToFloat64(r.infiltrationMM))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calendars))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calibrations))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.seasons))
}

func TestRecorder_NilIsNoOp(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.ObservePartition(1, 2)
		r.CalendarBuilt()
		r.CalibrationRun()
		r.SeasonsScheduled(5)
	})
}
