package cliconvert

import (
	"time"

	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/spf13/cobra"
)

var params = &convertParams{}

func GetConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert AMOUNT",
		Short:   "converts an amount between currencies (jpy amounts accept man/sen/hyaku, i.e. 32man9323)",
		Args:    cobra.ExactArgs(1),
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	params.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, args []string) error {
	return params.validateFlags(args)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	results, err := params.Execute(cmd.Context(), time.Now())
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(results)
}
