package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL         = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1"
	DefaultRequestTimeout = 10 * time.Second
	DefaultCSVCacheFile   = "rates.csv"
	DefaultBoltCacheFile  = "rates.db"

	cacheDirName = "currency-converter"
	configPrefix = "converter"

	EnvCachePath = "CONVERTER_CACHE_PATH"
	EnvCacheType = "CONVERTER_CACHE_TYPE"
	EnvAPIURL    = "CONVERTER_API_URL"
)

type RateCacheConfig struct {
	Type string `json:"type"` // csv (default) or bolt
	Path string `json:"path"`
}

type AppConfig struct {
	APIURL         string              `json:"apiUrl"`
	RequestTimeout time.Duration       `json:"requestTimeout"`
	RateCache      RateCacheConfig     `json:"rateCache"`
	Logger         common.LoggerConfig `json:"logger"`
}

// LoadAppConfig reads json config (converter_config.json next to the executable when configPath is empty)
// and applies environment overrides, including the ones from a .env file in the working directory
func LoadAppConfig(configPath string) (*AppConfig, error) {
	config, err := common.LoadConfig[AppConfig](configPath, configPrefix)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config.ApplyEnv()

	return config, nil
}

// ApplyEnv overrides config values with the environment variables that are set
func (c *AppConfig) ApplyEnv() {
	if v := os.Getenv(EnvCachePath); v != "" {
		c.RateCache.Path = v
	}

	if v := os.Getenv(EnvCacheType); v != "" {
		c.RateCache.Type = v
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
}

// FillOut sets defaults for every value left empty
func (c *AppConfig) FillOut() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}

	cacheType, err := ParseRateCacheType(c.RateCache.Type)
	if err != nil {
		return err
	}

	c.RateCache.Type = cacheType.String()

	if c.RateCache.Path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("failed to resolve cache directory: %w", err)
		}

		fileName := DefaultCSVCacheFile
		if cacheType == BoltCache {
			fileName = DefaultBoltCacheFile
		}

		c.RateCache.Path = filepath.Join(dir, cacheDirName, fileName)
	}

	return nil
}

func (c *AppConfig) Validate() error {
	if !common.IsValidURL(c.APIURL) {
		return fmt.Errorf("invalid api url: %s", c.APIURL)
	}

	if _, err := ParseRateCacheType(c.RateCache.Type); err != nil {
		return err
	}

	return nil
}
