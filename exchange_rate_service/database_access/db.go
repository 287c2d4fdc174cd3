package databaseaccess

import (
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/hashicorp/go-hclog"
)

func NewRateStore(config core.RateCacheConfig, logger hclog.Logger) (core.RateStore, error) {
	cacheType, err := core.ParseRateCacheType(config.Type)
	if err != nil {
		return nil, err
	}

	switch cacheType {
	case core.BoltCache:
		return NewBoltRateStore(config.Path, logger)
	default:
		return NewCSVRateStore(config.Path, logger), nil
	}
}
