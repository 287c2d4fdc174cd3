package converter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/Ethernal-Tech/currency-converter/numeral"
	"github.com/Ethernal-Tech/currency-converter/telemetry"
	"github.com/hashicorp/go-hclog"
	"github.com/shopspring/decimal"
)

const (
	RateSourceManual   = "manual"
	RateSourceCache    = "cache"
	RateSourceProvider = "provider"
)

var (
	ErrInvalidRequest = errors.New("invalid conversion request")

	monthsInYear = decimal.NewFromInt(12)
)

type RateProvider interface {
	GetRate(ctx context.Context, source, target string, today time.Time) (*model.RateResult, error)
}

type Request struct {
	Amount string
	Source string
	Target string
	// Rate bypasses the rate provider when set
	Rate    *float64
	Monthly bool
	Yearly  bool
	Now     time.Time
}

type Result struct {
	Source         string           `json:"source"`
	Target         string           `json:"target"`
	Amount         decimal.Decimal  `json:"amount"`
	Rate           decimal.Decimal  `json:"rate"`
	InverseRate    decimal.Decimal  `json:"inverseRate"`
	Total          decimal.Decimal  `json:"total"`
	Monthly        *decimal.Decimal `json:"monthly,omitempty"`
	Yearly         *decimal.Decimal `json:"yearly,omitempty"`
	RateSource     string           `json:"rateSource"`
	RateDate       string           `json:"rateDate,omitempty"`
	PersistWarning string           `json:"persistWarning,omitempty"`
	Time           time.Time        `json:"time"`
}

type Converter struct {
	rates  RateProvider
	logger hclog.Logger
}

func NewConverter(rates RateProvider, logger hclog.Logger) *Converter {
	return &Converter{
		rates:  rates,
		logger: logger,
	}
}

func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	source, target := NormalizeCode(req.Source), NormalizeCode(req.Target)
	if source == "" || target == "" {
		return nil, fmt.Errorf("%w: source and target currency must be set", ErrInvalidRequest)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	amountValue, err := ParseAmount(req.Amount, source)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source: source,
		Target: target,
		Amount: decimal.NewFromFloat(amountValue),
		Time:   now,
	}

	var rateValue float64

	if req.Rate != nil {
		rateValue = *req.Rate
		result.RateSource = RateSourceManual
	} else {
		if c.rates == nil {
			return nil, fmt.Errorf("%w: no rate given and no rate provider configured", ErrInvalidRequest)
		}

		rateResult, err := c.rates.GetRate(ctx, source, target, now)
		if err != nil {
			return nil, err
		}

		rateValue = rateResult.Rate
		result.RateDate = rateResult.Date
		result.RateSource = RateSourceProvider

		if rateResult.Cached {
			result.RateSource = RateSourceCache
		}

		if rateResult.PersistErr != nil {
			result.PersistWarning = fmt.Sprintf("rate was not cached: %v", rateResult.PersistErr)
		}
	}

	if !IsValidRate(rateValue) {
		return nil, fmt.Errorf("%w: rate must be a positive number, got %v", ErrInvalidRequest, rateValue)
	}

	result.Rate = decimal.NewFromFloat(rateValue)
	result.InverseRate = decimal.NewFromInt(1).Div(result.Rate)
	result.Total = result.Amount.Mul(result.Rate)

	if req.Monthly {
		monthly := result.Total.Div(monthsInYear)
		result.Monthly = &monthly
	}

	if req.Yearly {
		yearly := result.Total.Mul(monthsInYear)
		result.Yearly = &yearly
	}

	telemetry.UpdateConversionCounter(source+"_"+target, req.Rate != nil)
	c.logger.Debug("Converted", "source", source, "target", target,
		"amount", result.Amount, "rate", result.Rate, "total", result.Total)

	return result, nil
}

// ParseAmount reads numeral words for yen and plain decimals for any other currency
func ParseAmount(amount string, source string) (float64, error) {
	if NormalizeCode(source) == YenCode {
		return numeral.Parse(amount)
	}

	text := strings.ReplaceAll(common.StripWhitespace(amount), ",", ".")

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", numeral.ErrInvalidAmount, amount)
	}

	return value, nil
}

// IsValidRate reports whether rate is finite and positive
func IsValidRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}

func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
