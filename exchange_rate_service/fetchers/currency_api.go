package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/hashicorp/go-hclog"
)

// CurrencyAPIFetcher reads daily rate tables published by https://github.com/fawazahmed0/exchange-api
type CurrencyAPIFetcher struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  hclog.Logger
}

var _ core.ExchangeRateFetcher = (*CurrencyAPIFetcher)(nil)

func NewCurrencyAPIFetcher(baseURL string, timeout time.Duration, logger hclog.Logger) *CurrencyAPIFetcher {
	if timeout <= 0 {
		timeout = core.DefaultRequestTimeout
	}

	return &CurrencyAPIFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (f *CurrencyAPIFetcher) FetchRates(
	ctx context.Context, params model.FetchRateParams,
) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/currencies/%s.json", f.baseURL, params.Source)

	f.logger.Debug("Fetching rates", "url", url)

	response, err := common.HTTPGet[*model.CurrencyAPIResponse](ctx, f.client, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrFetchFailed, err)
	} else if response == nil {
		return nil, fmt.Errorf("%w: empty response from %s", core.ErrFetchFailed, url)
	}

	rates, exists := response.Rates[params.Source]
	if !exists {
		return nil, fmt.Errorf("%w: response has no rates for %s", core.ErrFetchFailed, params.Source)
	}

	f.logger.Debug("Rates fetched", "source", params.Source, "date", response.Date, "count", len(rates))

	return rates, nil
}
