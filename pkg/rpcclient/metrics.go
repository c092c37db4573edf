package rpcclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds per-method request counters and timings. A nil *metrics
// collects nothing.
type metrics struct {
	calls *prometheus.CounterVec
	times *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Help:      "Number of RPC calls made by the client",
				Name:      "rpc_client_calls_total",
				Namespace: "neotx",
			},
			[]string{"method", "status"},
		),
		times: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Help:      "RPC call time",
				Name:      "rpc_client_call_seconds",
				Namespace: "neotx",
			},
			[]string{"method"},
		),
	}
	for _, c := range []prometheus.Collector{m.calls, m.times} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(method string, t time.Duration, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.calls.WithLabelValues(method, status).Inc()
	m.times.WithLabelValues(method).Observe(t.Seconds())
}
