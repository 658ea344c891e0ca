package cli

import (
	"fmt"
	"os"

	cligenerateconfigs "github.com/refdata/ref-oracle/cli/generateconfigs"
	clirefs "github.com/refdata/ref-oracle/cli/refs"
	clirunoracle "github.com/refdata/ref-oracle/cli/runoracle"
	"github.com/refdata/ref-oracle/common"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "cli commands for the reference data oracle",
		},
	}

	common.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		clirunoracle.GetRunOracleCommand(),
		cligenerateconfigs.GetGenerateConfigsCommand(),
		clirefs.GetRefsCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
