package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndCount(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.SchemaLoads.WithLabelValues("ok").Inc()
	m.SchemaLoads.WithLabelValues("malformed").Add(2)
	m.ValidationViolations.WithLabelValues("unresolved-reference").Inc()
	m.SeriesRead.Add(3)
	m.ObservationsRead.Add(9)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SchemaLoads.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SchemaLoads.WithLabelValues("malformed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationViolations.WithLabelValues("unresolved-reference")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SeriesRead))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.ObservationsRead))
}

func TestRegisterTwiceFails(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))
}

func TestMustRegisterPanicsOnConflict(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()
	m.MustRegister(reg)
	assert.Panics(t, func() { m.MustRegister(reg) })
}
