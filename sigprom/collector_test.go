package sigprom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sig "github.com/signified-go/signified"
)

func counterValue(t *testing.T, cv *prometheus.CounterVec, labelValue string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, cv.WithLabelValues(labelValue).Write(m))
	return m.GetCounter().GetValue()
}

func TestCollector_countsCreatedAndReadAndUpdated(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	defer c.Close()

	s := sig.NewSignal(1)
	s.Read()
	require.NoError(t, s.Write(2))

	assert.Equal(t, float64(1), counterValue(t, c.Created, "signal"))
	assert.Equal(t, float64(1), counterValue(t, c.Reads, "signal"))
	assert.Equal(t, float64(1), counterValue(t, c.Updates, "signal"))
}

func TestCollector_distinguishesComputedFromSignal(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	defer c.Close()

	x := sig.NewSignal(1)
	d := sig.NewComputed(func() int { return x.Read() + 1 })
	d.Read()

	assert.Equal(t, float64(1), counterValue(t, c.Created, "computed"))
	assert.Equal(t, float64(1), counterValue(t, c.Reads, "computed"))
}
