package clirates

import (
	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/spf13/cobra"
)

var params = &ratesParams{}

func GetRatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rates",
		Short:   "lists exchange rates stored in the local rate cache",
		Args:    cobra.NoArgs,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	params.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	results, err := params.Execute(cmd.Context())
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(results)
}
