package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

const jsonOutputFlag = "json"

// ICommandResult is the result of a cli command ready to be rendered
type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
}

type CliCommandExecutor interface {
	Execute(outputter OutputFormatter) (ICommandResult, error)
}

func GetCliRunCommand(executor CliCommandExecutor) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, _ []string) {
		outputter := InitializeOutputter(cmd)
		defer outputter.WriteOutput()

		result, err := executor.Execute(outputter)
		if err != nil {
			outputter.SetError(err)

			return
		}

		outputter.SetCommandResult(result)
	}
}

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	if jsonOutput, _ := cmd.Flags().GetBool(jsonOutputFlag); jsonOutput {
		return &jsonOutputter{writer: os.Stdout}
	}

	return &textOutputter{writer: os.Stdout}
}

type textOutputter struct {
	writer io.Writer
	result ICommandResult
	err    error
}

func (o *textOutputter) SetError(err error) {
	o.err = err
}

func (o *textOutputter) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *textOutputter) WriteOutput() {
	if o.err != nil {
		_, _ = fmt.Fprintf(o.writer, "Error: %v\n", o.err)

		return
	}

	if o.result != nil {
		_, _ = fmt.Fprintln(o.writer, o.result.GetOutput())
	}
}

type jsonOutputter struct {
	writer io.Writer
	result ICommandResult
	err    error
}

func (o *jsonOutputter) SetError(err error) {
	o.err = err
}

func (o *jsonOutputter) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *jsonOutputter) WriteOutput() {
	if o.err != nil {
		_ = json.NewEncoder(o.writer).Encode(map[string]string{"error": o.err.Error()})

		return
	}

	if o.result != nil {
		_ = json.NewEncoder(o.writer).Encode(o.result)
	}
}

// FormatKV formats key value pairs separated by '|'
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// FormatList formats rows separated by '|' into aligned columns
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(jsonOutputFlag, false, "output results as json")
}
