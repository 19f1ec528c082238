package metrics

import (
	"log"

	"github.com/VictoriaMetrics/metrics"
)

// RecordIntakeStarted records a qualifying source post entering the intake
// conversation
func RecordIntakeStarted() {
	if !IsEnabled() {
		return
	}

	metrics.GetOrCreateCounter(`affli_intakes_total{stage="started"}`).Inc()
	log.Printf("[METRICS] Intake started")
}

// RecordIntakeCompleted records a fully persisted and reposted product
func RecordIntakeCompleted() {
	if !IsEnabled() {
		return
	}

	metrics.GetOrCreateCounter(`affli_intakes_total{stage="completed"}`).Inc()
	log.Printf("[METRICS] Intake completed")
}

// RecordIntakeFailed records an aborted intake with the failing stage
func RecordIntakeFailed(reason string) {
	if !IsEnabled() {
		return
	}

	metricName := `affli_intake_failures_total{reason="` + reason + `"}`
	metrics.GetOrCreateCounter(metricName).Inc()
	log.Printf("[METRICS] Intake failed: reason=%s", reason)
}

// RecordPublish records the outcome of a blog publish call
func RecordPublish(status string) {
	if !IsEnabled() {
		return
	}

	metricName := `affli_publishes_total{status="` + status + `"}`
	metrics.GetOrCreateCounter(metricName).Inc()
	log.Printf("[METRICS] Publish: status=%s", status)
}
