package cli

import (
	"fmt"
	"os"

	cliconvert "github.com/Ethernal-Tech/currency-converter/cli/convert"
	clirates "github.com/Ethernal-Tech/currency-converter/cli/rates"
	cliversion "github.com/Ethernal-Tech/currency-converter/cli/version"
	"github.com/Ethernal-Tech/currency-converter/common"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "converter",
			Short: "converts currencies (optimized for euro<->yen)",
		},
	}

	common.RegisterOutputFlag(rootCommand.baseCmd)
	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		cliconvert.GetConvertCommand(),
		clirates.GetRatesCommand(),
		cliversion.GetVersionCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
