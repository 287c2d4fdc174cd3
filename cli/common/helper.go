package clicommon

import (
	"fmt"

	"github.com/Ethernal-Tech/currency-converter/common"
	ratefetcher "github.com/Ethernal-Tech/currency-converter/exchange_rate_service"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	databaseaccess "github.com/Ethernal-Tech/currency-converter/exchange_rate_service/database_access"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/fetchers"
	"github.com/hashicorp/go-hclog"
)

func NewLogger(config *core.AppConfig) (hclog.Logger, error) {
	loggerConfig := config.Logger
	if loggerConfig.Name == "" {
		loggerConfig.Name = "converter"
	}

	logger, err := common.NewLogger(loggerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

// NewRateCache opens the configured rate store. Caller must close the returned store
func NewRateCache(config *core.AppConfig, logger hclog.Logger) (*ratefetcher.RateCache, core.RateStore, error) {
	store, err := databaseaccess.NewRateStore(config.RateCache, logger.Named("rate_store"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open rate cache: %w", err)
	}

	fetcher := fetchers.NewCurrencyAPIFetcher(config.APIURL, config.RequestTimeout, logger.Named("currency_api"))

	return ratefetcher.NewRateCache(store, fetcher, logger.Named("rate_cache")), store, nil
}
