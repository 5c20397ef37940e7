package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderLineWritten(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.LineWritten("BUILD", "information")
	rec.LineWritten("BUILD", "information")
	rec.LineWritten("TASK", "error")

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.lines.WithLabelValues("BUILD", "information")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.lines.WithLabelValues("TASK", "error")))
}

func TestRecorderActivityFinished(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.ActivityFinished("BUILD", true)
	rec.ActivityFinished("BUILD", false)
	rec.ActivityFinished("BUILD", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(rec.activities.WithLabelValues("BUILD", "success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(rec.activities.WithLabelValues("BUILD", "failure")))
}

func TestNilRecorder(t *testing.T) {
	var rec *Recorder
	rec.LineWritten("BUILD", "information") // should not panic
	rec.ActivityFinished("BUILD", true)
}

func TestNewRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
