package databaseaccess

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltRateStore(t *testing.T) {
	ctx := context.Background()
	filePath := filepath.Join(t.TempDir(), "db", "rates.db")

	store, err := NewBoltRateStore(filePath, hclog.NewNullLogger())
	require.NoError(t, err)

	defer store.Close()

	_, found, err := store.LookupToday(ctx, "usd", "jpy", "2024-03-06")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.AppendAndPersist(ctx, &model.RateEntry{
		Source: "usd", Target: "jpy", Rate: 149.1, Date: "2024-03-05",
	}))
	require.NoError(t, store.AppendAndPersist(ctx, &model.RateEntry{
		Source: "usd", Target: "jpy", Rate: 150.2, Date: "2024-03-06",
	}))

	rate, found, err := store.LookupToday(ctx, "usd", "jpy", "2024-03-06")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 150.2, rate)

	_, found, err = store.LookupToday(ctx, "jpy", "usd", "2024-03-06")
	require.NoError(t, err)
	assert.False(t, found)

	entries, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNewRateStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewRateStore(core.RateCacheConfig{Path: filepath.Join(dir, "rates.csv")}, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.IsType(t, &CSVRateStore{}, store)
	require.NoError(t, store.Close())

	store, err = NewRateStore(core.RateCacheConfig{
		Type: "bolt", Path: filepath.Join(dir, "rates.db"),
	}, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.IsType(t, &BoltRateStore{}, store)
	require.NoError(t, store.Close())

	_, err = NewRateStore(core.RateCacheConfig{Type: "redis"}, hclog.NewNullLogger())
	require.Error(t, err)
}
