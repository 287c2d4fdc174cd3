package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

const (
	OutputFlag     = "output"
	OutputFlagDesc = "output format of the command result (text, json)"

	OutputText = "text"
	OutputJSON = "json"
)

type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
}

type cliOutput struct {
	format string
	result ICommandResult
	err    error
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

var _ OutputFormatter = (*cliOutput)(nil)

// RegisterOutputFlag adds persistent --output flag to the command
func RegisterOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(OutputFlag, OutputText, OutputFlagDesc)
}

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	format := OutputText

	if flag := cmd.Flag(OutputFlag); flag != nil && flag.Value.String() != "" {
		format = flag.Value.String()
	}

	return &cliOutput{
		format: format,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		exit:   os.Exit,
	}
}

func (o *cliOutput) SetError(err error) {
	o.err = err
}

func (o *cliOutput) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *cliOutput) WriteOutput() {
	if o.err != nil {
		if o.format == OutputJSON {
			bytes, _ := json.Marshal(struct {
				Err string `json:"err"`
			}{Err: o.err.Error()})

			_, _ = fmt.Fprintln(o.stderr, string(bytes))
		} else {
			_, _ = fmt.Fprintf(o.stderr, "error: %v\n", o.err)
		}

		o.exit(1)

		return
	}

	if o.result == nil {
		return
	}

	if o.format == OutputJSON {
		bytes, err := json.MarshalIndent(o.result, "", "  ")
		if err != nil {
			_, _ = fmt.Fprintf(o.stderr, "error: failed to marshal result: %v\n", err)
			o.exit(1)

			return
		}

		_, _ = fmt.Fprintln(o.stdout, string(bytes))

		return
	}

	_, _ = fmt.Fprintln(o.stdout, o.result.GetOutput())
}

// FormatKV formats "key|value" rows into aligned "key = value" lines
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// FormatList formats "a|b|c" rows into aligned columns
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}
