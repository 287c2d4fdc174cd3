package clirates

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/exchange_rate_service/model"
)

type CmdResult struct {
	Path    string             `json:"path"`
	Entries []*model.RateEntry `json:"entries"`
}

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	_, _ = buffer.WriteString(fmt.Sprintf("Rate cache: %s\n", r.Path))

	if len(r.Entries) == 0 {
		_, _ = buffer.WriteString("no cached rates")

		return buffer.String()
	}

	rows := make([]string, 0, len(r.Entries)+1)
	rows = append(rows, "SRC|TARGET|RATE|DATE")

	for _, entry := range r.Entries {
		rows = append(rows, fmt.Sprintf("%s|%s|%s|%s",
			entry.Source, entry.Target, strconv.FormatFloat(entry.Rate, 'f', -1, 64), entry.Date))
	}

	_, _ = buffer.WriteString(common.FormatList(rows))

	return buffer.String()
}
