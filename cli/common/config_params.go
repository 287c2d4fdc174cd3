package clicommon

import (
	"fmt"
	"strings"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	configFlag    = "config"
	cachePathFlag = "cache"
	cacheTypeFlag = "cache-type"
	apiURLFlag    = "api-url"
	logLevelFlag  = "log-level"

	configFlagDesc    = "path to json config file (default: converter_config.json next to the executable)"
	cachePathFlagDesc = "path to the rate cache file"
	cacheTypeFlagDesc = "rate cache type (csv, bolt)"
	apiURLFlagDesc    = "base url of the currency api"
	logLevelFlagDesc  = "log level (trace, debug, info, warn, error)"
)

// ConfigParams are flags shared by every command that touches the rate cache
type ConfigParams struct {
	ConfigPath string
	CachePath  string
	CacheType  string
	APIURL     string
	LogLevel   string
}

func (p *ConfigParams) ValidateFlags() error {
	if p.CacheType != "" {
		if _, err := core.ParseRateCacheType(p.CacheType); err != nil {
			return fmt.Errorf("--%s: %w", cacheTypeFlag, err)
		}
	}

	if p.APIURL != "" && !common.IsValidURL(p.APIURL) {
		return fmt.Errorf("--%s invalid url: %s", apiURLFlag, p.APIURL)
	}

	if p.LogLevel != "" && hclog.LevelFromString(p.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("--%s invalid level: %s", logLevelFlag, p.LogLevel)
	}

	return nil
}

func (p *ConfigParams) SetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&p.ConfigPath,
		configFlag,
		"",
		configFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.CachePath,
		cachePathFlag,
		"",
		cachePathFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.CacheType,
		cacheTypeFlag,
		"",
		cacheTypeFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.APIURL,
		apiURLFlag,
		"",
		apiURLFlagDesc,
	)

	cmd.Flags().StringVar(
		&p.LogLevel,
		logLevelFlag,
		"",
		logLevelFlagDesc,
	)
}

// LoadConfig loads config file and environment, then applies flags on top of them
func (p *ConfigParams) LoadConfig() (*core.AppConfig, error) {
	config, err := core.LoadAppConfig(p.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if p.CachePath != "" {
		config.RateCache.Path = p.CachePath
	}

	if p.CacheType != "" {
		config.RateCache.Type = p.CacheType
	}

	if p.APIURL != "" {
		config.APIURL = p.APIURL
	}

	if p.LogLevel != "" {
		config.Logger.LogLevel = hclog.LevelFromString(strings.TrimSpace(p.LogLevel))
	}

	if err := config.FillOut(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
