package core

import (
	"fmt"
	"strings"
)

type RateCacheType int

const (
	CSVCache RateCacheType = iota
	BoltCache
)

func (e RateCacheType) String() string {
	switch e {
	case CSVCache:
		return "csv"
	case BoltCache:
		return "bolt"
	default:
		return "unknown"
	}
}

func ParseRateCacheType(s string) (RateCacheType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return CSVCache, nil
	case "bolt", "bbolt":
		return BoltCache, nil
	default:
		return 0, fmt.Errorf("unsupported rate cache type: %s", s)
	}
}
