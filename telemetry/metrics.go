package telemetry

import (
	"github.com/armon/go-metrics"
)

const (
	relayMetricsPrefix = "relay"
	queryMetricsPrefix = "query"
)

func UpdateRelayBatchCounter(cnt int) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "batch_counter"}, float32(cnt))
}

func UpdateRelaySymbolsCounter(cnt int) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "symbols_counter"}, float32(cnt))
}

func UpdateRelayRejectedCounter(cnt int) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "rejected_counter"}, float32(cnt))
}

func UpdateReferenceDataQueryCounter(base string, quote string) {
	metrics.IncrCounter([]string{queryMetricsPrefix, "reference_data_counter", base, quote}, 1)
}

func UpdateReferenceDataQueryFailedCounter(base string, quote string) {
	metrics.IncrCounter([]string{queryMetricsPrefix, "reference_data_failed_counter", base, quote}, 1)
}
