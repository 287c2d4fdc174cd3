package clirates

import (
	"context"
	"fmt"

	clicommon "github.com/Ethernal-Tech/currency-converter/cli/common"
	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/converter"
	databaseaccess "github.com/Ethernal-Tech/currency-converter/exchange_rate_service/database_access"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/spf13/cobra"
)

const (
	sourceFlag = "source_currency"
	targetFlag = "target_currency"

	sourceFlagDesc = "show only rates from this currency"
	targetFlagDesc = "show only rates to this currency"
)

type ratesParams struct {
	clicommon.ConfigParams

	source string
	target string
}

func (ip *ratesParams) validateFlags() error {
	return ip.ConfigParams.ValidateFlags()
}

func (ip *ratesParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&ip.source,
		sourceFlag,
		"s",
		"",
		sourceFlagDesc,
	)

	cmd.Flags().StringVarP(
		&ip.target,
		targetFlag,
		"t",
		"",
		targetFlagDesc,
	)

	ip.ConfigParams.SetFlags(cmd)
}

func (ip *ratesParams) Execute(ctx context.Context) (common.ICommandResult, error) {
	config, err := ip.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := clicommon.NewLogger(config)
	if err != nil {
		return nil, err
	}

	store, err := databaseaccess.NewRateStore(config.RateCache, logger.Named("rate_store"))
	if err != nil {
		return nil, fmt.Errorf("failed to open rate cache: %w", err)
	}

	defer store.Close()

	entries, err := store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	source, target := converter.NormalizeCode(ip.source), converter.NormalizeCode(ip.target)
	filtered := make([]*model.RateEntry, 0, len(entries))

	for _, entry := range entries {
		if (source == "" || entry.Source == source) && (target == "" || entry.Target == target) {
			filtered = append(filtered, entry)
		}
	}

	return &CmdResult{
		Path:    config.RateCache.Path,
		Entries: filtered,
	}, nil
}
