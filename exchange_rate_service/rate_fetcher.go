package ratefetcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/Ethernal-Tech/currency-converter/telemetry"
	"github.com/hashicorp/go-hclog"
)

// RateCache returns today's rate for a currency pair from the store, fetching and storing it on a miss
type RateCache struct {
	store   core.RateStore
	fetcher core.ExchangeRateFetcher
	logger  hclog.Logger
}

func NewRateCache(store core.RateStore, fetcher core.ExchangeRateFetcher, logger hclog.Logger) *RateCache {
	return &RateCache{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetRate returns the rate for source -> target valid on the calendar day of today.
// A failure to persist a freshly fetched rate is not fatal: the rate is returned with PersistErr set
func (r *RateCache) GetRate(ctx context.Context, source, target string, today time.Time) (*model.RateResult, error) {
	date := today.Format(model.DateLayout)
	pair := source + "_" + target

	rate, found, err := r.store.LookupToday(ctx, source, target, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	if found {
		r.logger.Debug("Rate found in cache", "source", source, "target", target, "date", date, "rate", rate)
		telemetry.UpdateRateCacheHit(pair)

		return &model.RateResult{Rate: rate, Date: date, Cached: true}, nil
	}

	telemetry.UpdateRateCacheMiss(pair)
	r.logger.Info("Fetching rate", "source", source, "target", target, "date", date)

	rates, err := r.fetcher.FetchRates(ctx, model.FetchRateParams{Source: source})
	if err != nil {
		telemetry.UpdateRateFetchFailed(pair)

		return nil, err
	}

	rate, exists := rates[target]
	if !exists {
		telemetry.UpdateRateFetchFailed(pair)

		return nil, fmt.Errorf("%w: no %s rate for %s", core.ErrUnsupportedCurrency, target, source)
	}

	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		telemetry.UpdateRateFetchFailed(pair)

		return nil, fmt.Errorf("%w: provider returned %v for %s -> %s", core.ErrFetchFailed, rate, source, target)
	}

	result := &model.RateResult{Rate: rate, Date: date}

	err = r.store.AppendAndPersist(ctx, &model.RateEntry{
		Source: source,
		Target: target,
		Rate:   rate,
		Date:   date,
	})
	if err != nil {
		telemetry.UpdateRatePersistFailed(pair)
		r.logger.Warn("Failed to persist fetched rate", "source", source, "target", target, "err", err)

		result.PersistErr = err
	}

	return result, nil
}
