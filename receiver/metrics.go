package receiver

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	received       atomic.Uint64
	handled        atomic.Uint64
	failed         atomic.Uint64
	handleDuration *prometheus.SummaryVec
}

func registerMetrics(reg *prometheus.Registry, r *receiver) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "receiver",
		Name:      "received",
		Help:      "total count of received messages",
	}, func() float64 {
		return float64(r.metrics.received.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "receiver",
		Name:      "handled",
		Help:      "total count of successfully handled messages",
	}, func() float64 {
		return float64(r.metrics.handled.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "receiver",
		Name:      "failed",
		Help:      "total count of messages the handler failed on",
	}, func() float64 {
		return float64(r.metrics.failed.Load())
	}))
	r.metrics.handleDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "push",
		Subsystem: "receiver",
		Name:      "handle_duration_seconds",
		Objectives: map[float64]float64{
			0.5:  0.5,
			0.85: 0.01,
			0.95: 0.0005,
			0.99: 0.0001,
		},
	}, nil)
	reg.MustRegister(r.metrics.handleDuration)
}
