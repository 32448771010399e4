package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

// ConverterMetrics collects per-run conversion metrics. The tool exits after
// one run, so metrics are flushed to a node-exporter textfile instead of
// being served.
type ConverterMetrics struct {
	registry *prometheus.Registry

	questions    *prometheus.GaugeVec
	bytesWritten *prometheus.GaugeVec
	backups      prometheus.Counter
	runDuration  *prometheus.GaugeVec
	lastSuccess  prometheus.Gauge
}

func NewConverterMetrics(service string) *ConverterMetrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	questions := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   "biocheck",
			Subsystem:   "converter",
			Name:        "questions",
			Help:        "Converted questions by language and block.",
			ConstLabels: constLabels,
		},
		[]string{"language", "block"},
	)
	bytesWritten := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   "biocheck",
			Subsystem:   "converter",
			Name:        "output_bytes",
			Help:        "Size of the generated questions file by language.",
			ConstLabels: constLabels,
		},
		[]string{"language"},
	)
	backups := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "biocheck",
			Subsystem:   "converter",
			Name:        "backups_total",
			Help:        "Existing output files renamed to a backup before writing.",
			ConstLabels: constLabels,
		},
	)
	runDuration := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   "biocheck",
			Subsystem:   "converter",
			Name:        "run_duration_seconds",
			Help:        "Duration of the last conversion run by status.",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)
	lastSuccess := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "biocheck",
			Subsystem:   "converter",
			Name:        "last_success_timestamp_seconds",
			Help:        "Unix time of the last successful conversion run.",
			ConstLabels: constLabels,
		},
	)

	registry.MustRegister(questions, bytesWritten, backups, runDuration, lastSuccess)

	return &ConverterMetrics{
		registry:     registry,
		questions:    questions,
		bytesWritten: bytesWritten,
		backups:      backups,
		runDuration:  runDuration,
		lastSuccess:  lastSuccess,
	}
}

func (m *ConverterMetrics) ObserveDocument(doc *domain.OutputDocument, written domain.WriteResult) {
	lang := string(doc.Language)
	m.questions.WithLabelValues(lang, "farm_profile").Set(float64(len(doc.FarmProfile.Questions)))
	m.questions.WithLabelValues(lang, "assessment").Set(float64(doc.Assessment.TotalQuestions))
	m.bytesWritten.WithLabelValues(lang).Set(float64(written.Bytes))
	if written.BackupPath != "" {
		m.backups.Inc()
	}
}

func (m *ConverterMetrics) ObserveRun(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.runDuration.WithLabelValues(status).Set(duration.Seconds())
	if err == nil {
		m.lastSuccess.SetToCurrentTime()
	}
}

// WriteTextfile writes all metrics in the Prometheus text format.
func (m *ConverterMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *ConverterMetrics) Registry() *prometheus.Registry {
	return m.registry
}
