package cliconvert

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	clicommon "github.com/Ethernal-Tech/currency-converter/cli/common"
	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/converter"
	"github.com/Ethernal-Tech/currency-converter/telemetry"
	"github.com/spf13/cobra"
)

const (
	sourceCurrencyFlag = "source_currency"
	targetCurrencyFlag = "target_currency"
	rateFlag           = "rate"
	monthlyFlag        = "monthly"
	yearlyFlag         = "yearly"

	sourceCurrencyFlagDesc = "source currency code, i.e. jpy, eur, usd"
	targetCurrencyFlagDesc = "target currency code, i.e. jpy, eur, usd"
	rateFlagDesc           = "exchange rate, if empty fetch today's rate from the api or the local cache"
	monthlyFlagDesc        = "additionally show the converted amount divided by 12"
	yearlyFlagDesc         = "additionally show the converted amount multiplied by 12"
)

type convertParams struct {
	clicommon.ConfigParams

	amount         string
	sourceCurrency string
	targetCurrency string
	rateString     string
	monthly        bool
	yearly         bool

	rate *float64
}

func (ip *convertParams) validateFlags(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one amount argument, got %d", len(args))
	}

	ip.amount = args[0]

	if strings.TrimSpace(ip.sourceCurrency) == "" {
		return fmt.Errorf("flag --%s not specified", sourceCurrencyFlag)
	}

	if strings.TrimSpace(ip.targetCurrency) == "" {
		return fmt.Errorf("flag --%s not specified", targetCurrencyFlag)
	}

	ip.rate = nil

	if ip.rateString != "" {
		rate, err := strconv.ParseFloat(strings.TrimSpace(ip.rateString), 64)
		if err != nil || !converter.IsValidRate(rate) {
			return fmt.Errorf("--%s invalid rate: %s", rateFlag, ip.rateString)
		}

		ip.rate = &rate
	}

	if _, err := converter.ParseAmount(ip.amount, ip.sourceCurrency); err != nil {
		return err
	}

	return ip.ConfigParams.ValidateFlags()
}

func (ip *convertParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&ip.sourceCurrency,
		sourceCurrencyFlag,
		"s",
		"",
		sourceCurrencyFlagDesc,
	)

	cmd.Flags().StringVarP(
		&ip.targetCurrency,
		targetCurrencyFlag,
		"t",
		"",
		targetCurrencyFlagDesc,
	)

	cmd.Flags().StringVarP(
		&ip.rateString,
		rateFlag,
		"r",
		"",
		rateFlagDesc,
	)

	cmd.Flags().BoolVar(
		&ip.monthly,
		monthlyFlag,
		false,
		monthlyFlagDesc,
	)

	cmd.Flags().BoolVar(
		&ip.yearly,
		yearlyFlag,
		false,
		yearlyFlagDesc,
	)

	ip.ConfigParams.SetFlags(cmd)
}

func (ip *convertParams) Execute(ctx context.Context, now time.Time) (common.ICommandResult, error) {
	config, err := ip.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := clicommon.NewLogger(config)
	if err != nil {
		return nil, err
	}

	tel := telemetry.NewTelemetry(logger.Named("telemetry"))
	if err := tel.Start(); err != nil {
		logger.Warn("Failed to start telemetry", "err", err)
	}

	defer tel.Close()

	var rates converter.RateProvider

	// a manual rate never touches the cache
	if ip.rate == nil {
		rateCache, store, err := clicommon.NewRateCache(config, logger)
		if err != nil {
			return nil, err
		}

		defer store.Close()

		rates = rateCache
	}

	result, err := converter.NewConverter(rates, logger.Named("converter")).Convert(ctx, converter.Request{
		Amount:  ip.amount,
		Source:  ip.sourceCurrency,
		Target:  ip.targetCurrency,
		Rate:    ip.rate,
		Monthly: ip.monthly,
		Yearly:  ip.yearly,
		Now:     now,
	})
	if err != nil {
		return nil, err
	}

	return &CmdResult{Result: result}, nil
}
