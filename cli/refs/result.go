package clirefs

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/refdata/ref-oracle/common"
	"github.com/refdata/ref-oracle/oracle/core"
)

type CmdResult struct {
	refs map[string]core.RefData
}

var _ common.ICommandResult = (*CmdResult)(nil)

func (r CmdResult) GetOutput() string {
	symbols := make([]string, 0, len(r.refs))
	for symbol := range r.refs {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	rows := make([]string, 0, len(symbols)+1)
	rows = append(rows, "Symbol|Rate|Resolve Time|Request ID")

	for _, symbol := range symbols {
		refData := r.refs[symbol]
		rows = append(rows, fmt.Sprintf("%s|%d|%d|%d",
			symbol, refData.Rate, refData.ResolveTime, refData.RequestID))
	}

	var buffer bytes.Buffer

	buffer.WriteString("\n[Refs]\n")
	buffer.WriteString(common.FormatList(rows))
	buffer.WriteString("\n")

	return buffer.String()
}
