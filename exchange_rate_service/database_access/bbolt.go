package databaseaccess

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/hashicorp/go-hclog"
	"go.etcd.io/bbolt"
)

var RatesBucket = []byte("Rates")

const boltOpenTimeout = 5 * time.Second

// BoltRateStore keeps one entry per pair per day under key src_target_date
type BoltRateStore struct {
	db     *bbolt.DB
	logger hclog.Logger
}

var _ core.RateStore = (*BoltRateStore)(nil)

func NewBoltRateStore(filePath string, logger hclog.Logger) (*BoltRateStore, error) {
	if err := common.CreateDirectoryIfNotExists(filepath.Dir(filePath), 0770); err != nil {
		return nil, fmt.Errorf("failed to create directory for rate cache: %w", err)
	}

	db, err := bbolt.Open(filePath, 0660, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(RatesBucket); err != nil {
			return fmt.Errorf("could not bucket: %s, err: %w", string(RatesBucket), err)
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &BoltRateStore{
		db:     db,
		logger: logger,
	}, nil
}

func (bd *BoltRateStore) LookupToday(_ context.Context, source, target, date string) (
	rate float64, found bool, err error,
) {
	err = bd.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(RatesBucket).Get(rateKey(source, target, date))
		if len(data) == 0 {
			return nil
		}

		var entry model.RateEntry

		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("%w: %w", core.ErrCorruptStore, err)
		}

		rate, found = entry.Rate, true

		return nil
	})

	return rate, found, err
}

func (bd *BoltRateStore) AppendAndPersist(_ context.Context, entry *model.RateEntry) error {
	bytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not marshal rate entry: %w", err)
	}

	err = bd.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(RatesBucket).Put(rateKey(entry.Source, entry.Target, entry.Date), bytes)
	})
	if err != nil {
		return fmt.Errorf("failed to persist rate entry: %w", err)
	}

	bd.logger.Debug("Rate cache persisted", "path", bd.db.Path(), "entry", entry)

	return nil
}

func (bd *BoltRateStore) GetAll(_ context.Context) ([]*model.RateEntry, error) {
	var result []*model.RateEntry

	err := bd.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(RatesBucket).Cursor()

		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var entry model.RateEntry

			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("%w: %w", core.ErrCorruptStore, err)
			}

			result = append(result, &entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (bd *BoltRateStore) Close() error {
	return bd.db.Close()
}

func rateKey(source, target, date string) []byte {
	return fmt.Appendf(nil, "%s_%s_%s", source, target, date)
}
