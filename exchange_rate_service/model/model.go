package model

import (
	"encoding/json"
	"fmt"
)

const DateLayout = "2006-01-02"

type FetchRateParams struct {
	Source string
}

// RateEntry is one row of the rate cache
type RateEntry struct {
	Source string  `json:"src"`
	Target string  `json:"target"`
	Rate   float64 `json:"rate"`
	Date   string  `json:"date"`
}

type RateResult struct {
	Rate   float64 `json:"rate"`
	Date   string  `json:"date"`
	Cached bool    `json:"cached"`
	// PersistErr is set when the fetched rate could not be written to the cache
	PersistErr error `json:"-"`
}

// CurrencyAPIResponse is the body of GET .../currencies/{source}.json
// {"date": "2024-03-06", "jpy": {"eur": 0.0061, "usd": 0.0066, ...}}
type CurrencyAPIResponse struct {
	Date  string
	Rates map[string]map[string]float64
}

func (r *CurrencyAPIResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Rates = make(map[string]map[string]float64, len(raw))

	for key, value := range raw {
		if key == "date" {
			if err := json.Unmarshal(value, &r.Date); err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			continue
		}

		var rates map[string]float64
		if err := json.Unmarshal(value, &rates); err != nil {
			return fmt.Errorf("invalid rates for %s: %w", key, err)
		}

		r.Rates[key] = rates
	}

	return nil
}
