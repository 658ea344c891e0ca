package core

import (
	apiCore "github.com/refdata/ref-oracle/api/core"
	"github.com/refdata/ref-oracle/logger"
	"github.com/refdata/ref-oracle/telemetry"
)

type AppSettings struct {
	DbsPath string              `json:"dbsPath"`
	Logger  logger.LoggerConfig `json:"logger"`
}

type RelayConfig struct {
	// AllowedRelayers is an optional hex address allow-list. Empty means
	// any caller may relay.
	AllowedRelayers []string `json:"allowedRelayers"`
}

type AppConfig struct {
	Settings  AppSettings               `json:"appSettings"`
	Relay     RelayConfig               `json:"relay"`
	APIConfig apiCore.APIConfig         `json:"api"`
	Telemetry telemetry.TelemetryConfig `json:"telemetry"`
}
