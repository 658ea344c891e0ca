package clirunoracle

import (
	"github.com/refdata/ref-oracle/common"
)

type CmdResult struct{}

var _ common.ICommandResult = (*CmdResult)(nil)

func (r CmdResult) GetOutput() string {
	return "oracle stopped"
}
