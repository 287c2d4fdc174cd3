package telemetry

import (
	"github.com/armon/go-metrics"
)

const (
	rateCacheMetricsPrefix = "rate_cache"
	converterMetricsPrefix = "converter"
)

func UpdateRateCacheHit(pair string) {
	metrics.IncrCounter([]string{rateCacheMetricsPrefix, "hit", pair}, 1)
}

func UpdateRateCacheMiss(pair string) {
	metrics.IncrCounter([]string{rateCacheMetricsPrefix, "miss", pair}, 1)
}

func UpdateRateFetchFailed(pair string) {
	metrics.IncrCounter([]string{rateCacheMetricsPrefix, "fetch_failed", pair}, 1)
}

func UpdateRatePersistFailed(pair string) {
	metrics.IncrCounter([]string{rateCacheMetricsPrefix, "persist_failed", pair}, 1)
}

func UpdateConversionCounter(pair string, manualRate bool) {
	if manualRate {
		metrics.IncrCounter([]string{converterMetricsPrefix, "manual_rate", pair}, 1)
	} else {
		metrics.IncrCounter([]string{converterMetricsPrefix, "conversions", pair}, 1)
	}
}
