package clirunoracle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/refdata/ref-oracle/common"
	"github.com/refdata/ref-oracle/logger"
	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/refdata/ref-oracle/oracle/oracle"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetRunOracleCommand() *cobra.Command {
	runOracleCmd := &cobra.Command{
		Use:     "run-oracle",
		Short:   "runs the reference data oracle",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(runOracleCmd)

	return runOracleCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := loadConfig(initParamsData)
	if err != nil {
		outputter.SetError(err)

		return
	}

	appLogger, err := logger.NewLogger(config.Settings.Logger)
	if err != nil {
		outputter.SetError(err)

		return
	}

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	oracleObj, err := oracle.NewOracle(ctx, config, appLogger)
	if err != nil {
		outputter.SetError(err)

		return
	}

	err = oracleObj.Start()
	if err != nil {
		outputter.SetError(err)

		return
	}

	defer oracleObj.Dispose()

	signalChannel := make(chan os.Signal, 1)
	// Notify the signalChannel when the interrupt signal is received (Ctrl+C)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	select {
	case <-signalChannel:
	case err = <-oracleObj.ErrorCh():
		appLogger.Error("oracle stopped with error", "err", err)
	}

	outputter.SetCommandResult(&CmdResult{})
}

func loadConfig(initParamsData *initParams) (*core.AppConfig, error) {
	var (
		config *core.AppConfig
		err    error
	)

	if initParamsData.config != "" {
		config, err = common.LoadJson[core.AppConfig](initParamsData.config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %v", err)
		}
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, err
		}

		configPath := filepath.Join(filepath.Dir(ex), "oracle_config.json")

		config, err = common.LoadJson[core.AppConfig](configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %v", err)
		}
	}

	return config, nil
}
