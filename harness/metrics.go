package harness

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RESULT_PASSED = "passed"
	RESULT_FAILED = "failed"
)

// Metrics holds the Prometheus metrics recorded per harness run.
type Metrics struct {
	Runs            *prometheus.CounterVec
	OriginalBytes   prometheus.Counter
	CompressedBytes prometheus.Counter
	Ratio           prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rle_harness_runs_total",
		Help: "Round-trip runs by validation result",
	}, []string{"result"})

	originalBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rle_harness_original_bytes_total",
		Help: "Raw bytes fed to the compressor",
	})

	compressedBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rle_harness_compressed_bytes_total",
		Help: "Encoded bytes produced by the compressor",
	})

	ratio := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rle_harness_compression_ratio",
		Help:    "Original size divided by compressed size per run",
		Buckets: []float64{0.5, 0.75, 1, 1.5, 2, 3, 4, 8, 16},
	})

	reg.MustRegister(runs, originalBytes, compressedBytes, ratio)

	return &Metrics{
		Runs:            runs,
		OriginalBytes:   originalBytes,
		CompressedBytes: compressedBytes,
		Ratio:           ratio,
	}
}

func (m *Metrics) observe(res Result) {
	if res.Passed {
		m.Runs.WithLabelValues(RESULT_PASSED).Inc()
	} else {
		m.Runs.WithLabelValues(RESULT_FAILED).Inc()
	}

	m.OriginalBytes.Add(float64(res.OriginalSize))
	m.CompressedBytes.Add(float64(res.CompressedSize))

	if res.CompressedSize > 0 {
		m.Ratio.Observe(res.Ratio)
	}
}
