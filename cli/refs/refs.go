package clirefs

import (
	"github.com/refdata/ref-oracle/common"
	"github.com/spf13/cobra"
)

var paramsData = &refsParams{}

func GetRefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refs",
		Short:   "lists the symbols stored in a ref store database",
		PreRunE: runPreRun,
		Run:     common.GetCliRunCommand(paramsData),
	}

	paramsData.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return paramsData.validateFlags()
}
