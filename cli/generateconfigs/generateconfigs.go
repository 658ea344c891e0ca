package cligenerateconfigs

import (
	"github.com/refdata/ref-oracle/common"
	"github.com/spf13/cobra"
)

var paramsData = &generateConfigsParams{}

func GetGenerateConfigsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate-configs",
		Short:   "generates default config json file",
		PreRunE: runPreRun,
		Run:     common.GetCliRunCommand(paramsData),
	}

	paramsData.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return paramsData.validateFlags()
}
