package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
		Register()
	})
}

func TestParsesTotalIncrements(t *testing.T) {
	Register()
	before := counterValue(t, ParsesTotal)
	ParsesTotal.Inc()
	after := counterValue(t, ParsesTotal)
	assert.Equal(t, before+1, after)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
