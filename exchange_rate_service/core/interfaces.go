package core

import (
	"context"

	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
)

type ExchangeRateFetcher interface {
	// FetchRates returns rates of every currency the provider knows relative to params.Source
	FetchRates(ctx context.Context, params model.FetchRateParams) (map[string]float64, error)
}

type RateStore interface {
	// LookupToday returns rate for the pair stored under date, second value is false when there is none
	LookupToday(ctx context.Context, source, target, date string) (float64, bool, error)
	// AppendAndPersist adds entry to the store. Existing entries are never removed
	AppendAndPersist(ctx context.Context, entry *model.RateEntry) error
	GetAll(ctx context.Context) ([]*model.RateEntry, error)
	Close() error
}
