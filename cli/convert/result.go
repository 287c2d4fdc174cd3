package cliconvert

import (
	"bytes"
	"fmt"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/Ethernal-Tech/currency-converter/converter"
)

const headerTimeLayout = "2006-01-02 15:04"

type CmdResult struct {
	*converter.Result
}

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	srcSymbol, targetSymbol := converter.Symbol(r.Source), converter.Symbol(r.Target)

	_, _ = buffer.WriteString(fmt.Sprintf(
		"============== Currency converter (%s->%s) | %s =============\n",
		srcSymbol, targetSymbol, r.Time.Format(headerTimeLayout)))

	rateSource := r.RateSource
	if r.RateDate != "" {
		rateSource = fmt.Sprintf("%s, %s", rateSource, r.RateDate)
	}

	_, _ = buffer.WriteString(common.FormatKV([]string{
		fmt.Sprintf("Rate (1%s -> %s)|%s", srcSymbol, targetSymbol, r.Rate),
		fmt.Sprintf("Inverse rate (1%s -> %s)|%s", targetSymbol, srcSymbol, r.InverseRate),
		fmt.Sprintf("Rate source|%s", rateSource),
	}))

	_, _ = buffer.WriteString(fmt.Sprintf("\n\n%s -> %s",
		converter.FormatCurrency(r.Amount, r.Source), converter.FormatCurrency(r.Total, r.Target)))

	if r.Monthly != nil {
		_, _ = buffer.WriteString(fmt.Sprintf("\n\nMonthly: %s", converter.FormatCurrency(*r.Monthly, r.Target)))
	}

	if r.Yearly != nil {
		_, _ = buffer.WriteString(fmt.Sprintf("\n\nYearly: %s", converter.FormatCurrency(*r.Yearly, r.Target)))
	}

	if r.PersistWarning != "" {
		_, _ = buffer.WriteString(fmt.Sprintf("\n\nWarning: %s", r.PersistWarning))
	}

	return buffer.String()
}
