package cligenerateconfigs

import (
	"bytes"
	"fmt"

	"github.com/refdata/ref-oracle/common"
)

type CmdResult struct {
	configPath string
}

var _ common.ICommandResult = (*CmdResult)(nil)

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[Generate configs]\n")
	buffer.WriteString(common.FormatKV(
		[]string{
			fmt.Sprintf("Config|%s", r.configPath),
		}))
	buffer.WriteString("\n")

	return buffer.String()
}
