package cligenerateconfigs

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	apiCore "github.com/refdata/ref-oracle/api/core"
	"github.com/refdata/ref-oracle/common"
	"github.com/refdata/ref-oracle/logger"
	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/refdata/ref-oracle/telemetry"
	"github.com/spf13/cobra"
)

const (
	outputDirFlag       = "output-dir"
	outputFileNameFlag  = "output-file-name"
	dbsPathFlag         = "dbs-path"
	logsPathFlag        = "logs-path"
	apiPortFlag         = "api-port"
	apiKeysFlag         = "api-keys"
	allowedRelayersFlag = "allowed-relayers"
	prometheusAddrFlag  = "prometheus-addr"

	outputDirFlagDesc       = "path to config json output directory"
	outputFileNameFlagDesc  = "config json output file name"
	dbsPathFlagDesc         = "path to where the oracle databases will be stored"
	logsPathFlagDesc        = "path to where the oracle logs will be stored"
	apiPortFlagDesc         = "port at which the api will run"
	apiKeysFlagDesc         = "api keys for the relay endpoint"
	allowedRelayersFlagDesc = "hex addresses of relayers allowed to submit batches (empty means anyone)"
	prometheusAddrFlagDesc  = "address at which prometheus metrics are exposed (empty means disabled)"

	defaultOutputDir      = "./"
	defaultOutputFileName = "oracle_config.json"
	defaultDBsPath        = "./dbs"
	defaultLogsPath       = "./logs"
	defaultAPIPort        = 10000
)

type generateConfigsParams struct {
	outputDir       string
	outputFileName  string
	dbsPath         string
	logsPath        string
	apiPort         uint32
	apiKeys         []string
	allowedRelayers []string
	prometheusAddr  string
}

func (p *generateConfigsParams) validateFlags() error {
	if len(p.apiKeys) == 0 {
		return fmt.Errorf("specify at least one API key")
	}

	return nil
}

func (p *generateConfigsParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&p.outputDir,
		outputDirFlag,
		defaultOutputDir,
		outputDirFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.outputFileName,
		outputFileNameFlag,
		defaultOutputFileName,
		outputFileNameFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.dbsPath,
		dbsPathFlag,
		defaultDBsPath,
		dbsPathFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.logsPath,
		logsPathFlag,
		defaultLogsPath,
		logsPathFlagDesc,
	)
	cmd.Flags().Uint32Var(
		&p.apiPort,
		apiPortFlag,
		defaultAPIPort,
		apiPortFlagDesc,
	)
	cmd.Flags().StringArrayVar(
		&p.apiKeys,
		apiKeysFlag,
		nil,
		apiKeysFlagDesc,
	)
	cmd.Flags().StringArrayVar(
		&p.allowedRelayers,
		allowedRelayersFlag,
		nil,
		allowedRelayersFlagDesc,
	)
	cmd.Flags().StringVar(
		&p.prometheusAddr,
		prometheusAddrFlag,
		"",
		prometheusAddrFlagDesc,
	)
}

func (p *generateConfigsParams) Execute(_ common.OutputFormatter) (common.ICommandResult, error) {
	config := &core.AppConfig{
		Settings: core.AppSettings{
			DbsPath: p.dbsPath,
			Logger: logger.LoggerConfig{
				LogFilePath:   filepath.Join(p.logsPath, "oracle.log"),
				LogLevel:      hclog.Debug,
				JSONLogFormat: false,
				AppendFile:    true,
			},
		},
		Relay: core.RelayConfig{
			AllowedRelayers: p.allowedRelayers,
		},
		APIConfig: apiCore.APIConfig{
			Port:           p.apiPort,
			PathPrefix:     "api",
			AllowedHeaders: []string{"Content-Type"},
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{
				http.MethodGet, http.MethodHead, http.MethodPost,
				http.MethodPut, http.MethodOptions, http.MethodDelete,
			},
			APIKeyHeader: "x-api-key",
			APIKeys:      p.apiKeys,
		},
		Telemetry: telemetry.TelemetryConfig{
			PrometheusAddr: p.prometheusAddr,
		},
	}

	outputPath := filepath.Join(p.outputDir, p.outputFileName)

	if err := common.SaveJson(config, outputPath, true); err != nil {
		return nil, fmt.Errorf("failed to create config json: %w", err)
	}

	return &CmdResult{configPath: outputPath}, nil
}
