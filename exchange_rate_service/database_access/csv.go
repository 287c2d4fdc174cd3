package databaseaccess

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/core"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
	"github.com/hashicorp/go-hclog"
)

const csvFieldsCount = 4

var CSVHeader = []string{"src", "target", "rate", "date"}

// CSVRateStore keeps rates in a flat file: header row followed by src,target,rate,date rows
type CSVRateStore struct {
	filePath string
	logger   hclog.Logger
}

var _ core.RateStore = (*CSVRateStore)(nil)

func NewCSVRateStore(filePath string, logger hclog.Logger) *CSVRateStore {
	return &CSVRateStore{
		filePath: filePath,
		logger:   logger,
	}
}

func (s *CSVRateStore) LookupToday(_ context.Context, source, target, date string) (float64, bool, error) {
	rows, err := s.readRows()
	if err != nil {
		return 0, false, err
	}

	for i, row := range rows {
		if row[0] != source || row[1] != target {
			continue
		}

		if row[3] == date {
			rate, err := parseRate(row[2])
			if err != nil {
				return 0, false, fmt.Errorf("%w: row %d: %w", core.ErrCorruptStore, i+2, err)
			}

			return rate, true, nil
		}
	}

	return 0, false, nil
}

func (s *CSVRateStore) AppendAndPersist(_ context.Context, entry *model.RateEntry) error {
	rows, err := s.readRows()
	if err != nil {
		return err
	}

	rows = append(rows, []string{
		entry.Source, entry.Target, strconv.FormatFloat(entry.Rate, 'f', -1, 64), entry.Date,
	})

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(CSVHeader); err != nil {
		return err
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}

	if err := common.WriteFileAtomic(s.filePath, buf.Bytes(), 0660); err != nil {
		return fmt.Errorf("failed to write rate cache %s: %w", s.filePath, err)
	}

	s.logger.Debug("Rate cache persisted", "path", s.filePath, "rows", len(rows))

	return nil
}

func (s *CSVRateStore) GetAll(_ context.Context) ([]*model.RateEntry, error) {
	rows, err := s.readRows()
	if err != nil {
		return nil, err
	}

	result := make([]*model.RateEntry, len(rows))

	for i, row := range rows {
		rate, err := parseRate(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", core.ErrCorruptStore, i+2, err)
		}

		result[i] = &model.RateEntry{
			Source: row[0],
			Target: row[1],
			Rate:   rate,
			Date:   row[3],
		}
	}

	return result, nil
}

func (s *CSVRateStore) Close() error {
	return nil
}

// readRows returns all data rows. A file that does not exist yet is an empty cache
func (s *CSVRateStore) readRows() ([][]string, error) {
	f, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Rate cache does not exist yet", "path", s.filePath)

			return nil, nil
		}

		return nil, fmt.Errorf("failed to open rate cache %s: %w", s.filePath, err)
	}

	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = csvFieldsCount

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %s: %w", core.ErrCorruptStore, s.filePath, err)
	}

	if !isCSVHeader(header) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", core.ErrCorruptStore, s.filePath, header)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrCorruptStore, s.filePath, err)
	}

	return rows, nil
}

func isCSVHeader(row []string) bool {
	for i, name := range CSVHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), name) {
			return false
		}
	}

	return true
}

func parseRate(s string) (float64, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", s)
	}

	return rate, nil
}
