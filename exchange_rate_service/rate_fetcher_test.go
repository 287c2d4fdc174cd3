package ratefetcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	databaseaccess "github.com/Ethernal-Tech/currency-converter/exchange_rate_service/database_access"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/fetchers"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	rates map[string]float64
	err   error
	calls int
}

func (f *countingFetcher) FetchRates(_ context.Context, _ model.FetchRateParams) (map[string]float64, error) {
	f.calls++

	return f.rates, f.err
}

type failingStore struct {
	core.RateStore
}

func (s failingStore) AppendAndPersist(context.Context, *model.RateEntry) error {
	return errors.New("disk full")
}

func newCSVStore(t *testing.T, content string) (*databaseaccess.CSVRateStore, string) {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), "rates.csv")

	if content != "" {
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0600))
	}

	return databaseaccess.NewCSVRateStore(filePath, hclog.NewNullLogger()), filePath
}

func TestRateCache(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 6, 15, 4, 5, 0, time.Local)

	t.Run("round trip on empty store", func(t *testing.T) {
		store, filePath := newCSVStore(t, "src,target,rate,date\n")
		fetcher := &countingFetcher{rates: map[string]float64{"jpy": 1.5, "eur": 0.9}}

		result, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "jpy", today)

		require.NoError(t, err)
		assert.Equal(t, &model.RateResult{Rate: 1.5, Date: "2024-03-06"}, result)

		bytes, err := os.ReadFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, "src,target,rate,date\nusd,jpy,1.5,2024-03-06\n", string(bytes))
	})

	t.Run("same day idempotence", func(t *testing.T) {
		store, _ := newCSVStore(t, "src,target,rate,date\n")
		fetcher := &countingFetcher{rates: map[string]float64{"jpy": 1.5}}
		cache := NewRateCache(store, fetcher, hclog.NewNullLogger())

		first, err := cache.GetRate(ctx, "usd", "jpy", today)
		require.NoError(t, err)
		assert.False(t, first.Cached)

		second, err := cache.GetRate(ctx, "usd", "jpy", today.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, 1.5, second.Rate)

		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("stale entry is not used and is kept", func(t *testing.T) {
		store, _ := newCSVStore(t, "src,target,rate,date\nusd,jpy,1.4,2024-03-05\n")
		fetcher := &countingFetcher{rates: map[string]float64{"jpy": 1.5}}

		result, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "jpy", today)
		require.NoError(t, err)
		assert.Equal(t, 1.5, result.Rate)
		assert.Equal(t, 1, fetcher.calls)

		entries, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*model.RateEntry{
			{Source: "usd", Target: "jpy", Rate: 1.4, Date: "2024-03-05"},
			{Source: "usd", Target: "jpy", Rate: 1.5, Date: "2024-03-06"},
		}, entries)
	})

	t.Run("missing store file", func(t *testing.T) {
		store, filePath := newCSVStore(t, "")
		fetcher := &countingFetcher{rates: map[string]float64{"eur": 0.006}}

		result, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "jpy", "eur", today)
		require.NoError(t, err)
		assert.Equal(t, 0.006, result.Rate)
		assert.FileExists(t, filePath)
	})

	t.Run("corrupt store is fatal", func(t *testing.T) {
		store, _ := newCSVStore(t, "garbage\n")
		fetcher := &countingFetcher{rates: map[string]float64{"jpy": 1.5}}

		_, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "jpy", today)
		require.ErrorIs(t, err, core.ErrCorruptStore)
		assert.Equal(t, 0, fetcher.calls)
	})

	t.Run("fetch failure leaves store untouched", func(t *testing.T) {
		content := "src,target,rate,date\nusd,jpy,1.4,2024-03-05\n"
		store, filePath := newCSVStore(t, content)
		fetcher := &countingFetcher{err: fmt.Errorf("%w: boom", core.ErrFetchFailed)}

		_, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "jpy", today)
		require.ErrorIs(t, err, core.ErrFetchFailed)

		bytes, err := os.ReadFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, content, string(bytes))
	})

	t.Run("unsupported target currency", func(t *testing.T) {
		store, filePath := newCSVStore(t, "src,target,rate,date\n")
		fetcher := &countingFetcher{rates: map[string]float64{"eur": 0.9}}

		_, err := NewRateCache(store, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "xyz", today)
		require.ErrorIs(t, err, core.ErrUnsupportedCurrency)

		bytes, err := os.ReadFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, "src,target,rate,date\n", string(bytes))
	})

	t.Run("unusable provider rate is not cached", func(t *testing.T) {
		for _, rate := range []float64{0, -1.5, math.NaN(), math.Inf(1)} {
			store, filePath := newCSVStore(t, "src,target,rate,date\n")
			fetcher := &countingFetcher{rates: map[string]float64{"jpy": rate}}
			cache := NewRateCache(store, fetcher, hclog.NewNullLogger())

			_, err := cache.GetRate(ctx, "usd", "jpy", today)
			require.ErrorIs(t, err, core.ErrFetchFailed)

			bytes, err := os.ReadFile(filePath)
			require.NoError(t, err)
			assert.Equal(t, "src,target,rate,date\n", string(bytes))

			fetcher.rates = map[string]float64{"jpy": 1.5}

			result, err := cache.GetRate(ctx, "usd", "jpy", today)
			require.NoError(t, err)
			assert.False(t, result.Cached)
			assert.Equal(t, 1.5, result.Rate)
		}
	})

	t.Run("persist failure is not fatal", func(t *testing.T) {
		store, _ := newCSVStore(t, "src,target,rate,date\n")
		fetcher := &countingFetcher{rates: map[string]float64{"jpy": 1.5}}

		result, err := NewRateCache(failingStore{store}, fetcher, hclog.NewNullLogger()).GetRate(ctx, "usd", "jpy", today)
		require.NoError(t, err)
		assert.Equal(t, 1.5, result.Rate)
		assert.ErrorContains(t, result.PersistErr, "disk full")
	})
}

func TestRateCache_WithProviderServer(t *testing.T) {
	var requests atomic.Int32

	router := mux.NewRouter()
	router.HandleFunc("/currencies/{source}.json", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		_, _ = fmt.Fprintf(w, `{"date":"2024-03-06","%s":{"jpy":1.5}}`, mux.Vars(r)["source"])
	})

	server := httptest.NewServer(router)
	defer server.Close()

	store, err := databaseaccess.NewBoltRateStore(filepath.Join(t.TempDir(), "rates.db"), hclog.NewNullLogger())
	require.NoError(t, err)

	defer store.Close()

	cache := NewRateCache(store, fetchers.NewCurrencyAPIFetcher(server.URL, time.Second, hclog.NewNullLogger()),
		hclog.NewNullLogger())
	today := time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		result, err := cache.GetRate(context.Background(), "usd", "jpy", today)
		require.NoError(t, err)
		assert.Equal(t, 1.5, result.Rate)
	}

	assert.Equal(t, int32(1), requests.Load())

	_, err = cache.GetRate(context.Background(), "usd", "jpy", today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}
