// SPDX-License-Identifier: MIT
package approx

import (
	"math/rand"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/operator"
)

// newTestMetrics registers collectors on an isolated registry.
func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	return m
}

func qubits(t *testing.T, n int) basis.Basis {
	t.Helper()
	q, err := basis.NewNLevel(2)
	require.NoError(t, err)
	fs := make([]basis.Basis, n)
	for i := range fs {
		fs[i] = q
	}
	b, err := basis.Tensor(fs...)
	require.NoError(t, err)

	return b
}

func randomOperator(t *testing.T, b basis.Basis) *operator.Operator {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	d, err := matrix.NewDense(b.Dim(), b.Dim())
	require.NoError(t, err)
	raw := d.RawData()
	for i := range raw {
		raw[i] = complex(rng.Float64(), rng.Float64())
	}
	op, err := operator.New(b, b, d)
	require.NoError(t, err)

	return op
}

func TestMetricsRecordConstructions(t *testing.T) {
	m := newTestMetrics(t)
	b := qubits(t, 3)
	masks, err := correlation.AllMasks(3, 2, 3)
	require.NoError(t, err)

	_, err = FromDensity(randomOperator(t, b), masks, WithMetrics(m))
	require.NoError(t, err)
	_, err = New(b, b, masks, WithMetrics(m))
	require.NoError(t, err)
	_, err = New(b, qubits(t, 2), nil, WithMetrics(m))
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.constructions.WithLabelValues(entryFromDensity, outcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.constructions.WithLabelValues(entryNew, outcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.constructions.WithLabelValues(entryNew, outcomeError)))
	require.Equal(t, 3.0, testutil.ToFloat64(m.correlations.WithLabelValues("2")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.correlations.WithLabelValues("3")))
	require.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetricsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.observe(entryNew, time.Now(), nil)
		m.extracted(2, 5)
	})
}

func TestGatherOptionsDefaults(t *testing.T) {
	o := gatherOptions()
	require.GreaterOrEqual(t, o.workers, 1)
	require.NotNil(t, o.logger)
	require.Nil(t, o.metrics)

	o = gatherOptions(WithWorkers(3), nil)
	require.Equal(t, 3, o.workers)
}
