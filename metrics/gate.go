package metrics

import (
	"log"

	"github.com/VictoriaMetrics/metrics"
)

// RecordMembershipCheck records a single force-join membership query
func RecordMembershipCheck(result string) {
	if !IsEnabled() {
		return
	}

	metricName := `affli_membership_checks_total{result="` + result + `"}`
	metrics.GetOrCreateCounter(metricName).Inc()
}

// RecordDeepLink records the outcome of a /start resolution
func RecordDeepLink(outcome string) {
	if !IsEnabled() {
		return
	}

	metricName := `affli_deep_links_total{outcome="` + outcome + `"}`
	metrics.GetOrCreateCounter(metricName).Inc()
	log.Printf("[METRICS] Deep link: outcome=%s", outcome)
}

// RecordRecheck records the outcome of an "I've joined" recheck callback
func RecordRecheck(outcome string) {
	if !IsEnabled() {
		return
	}

	metricName := `affli_rechecks_total{outcome="` + outcome + `"}`
	metrics.GetOrCreateCounter(metricName).Inc()
	log.Printf("[METRICS] Recheck: outcome=%s", outcome)
}
