package telemetry

import (
	"sort"
	"time"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

const (
	serviceName    = "currency_converter"
	inmemInterval  = 10 * time.Second
	inmemRetention = time.Minute
)

// Telemetry collects counters in memory for the lifetime of a single command
type Telemetry struct {
	sink   *metrics.InmemSink
	logger hclog.Logger
}

func NewTelemetry(logger hclog.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
	}
}

func (t *Telemetry) Start() error {
	t.sink = metrics.NewInmemSink(inmemInterval, inmemRetention)

	metricsConf := metrics.DefaultConfig(serviceName)
	metricsConf.EnableHostname = false
	metricsConf.EnableRuntimeMetrics = false

	_, err := metrics.NewGlobal(metricsConf, t.sink)

	return err
}

// Counters returns totals of all counters collected so far
func (t *Telemetry) Counters() map[string]int {
	result := map[string]int{}

	if t.sink == nil {
		return result
	}

	for _, interval := range t.sink.Data() {
		for name, value := range interval.Counters {
			if value.AggregateSample != nil {
				result[name] += value.Count
			}
		}
	}

	return result
}

// Close logs collected counters
func (t *Telemetry) Close() {
	counters := t.Counters()

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		t.logger.Debug("Counter", "name", name, "count", counters[name])
	}
}
