package oracle

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/refdata/ref-oracle/api"
	apiCore "github.com/refdata/ref-oracle/api/core"
	"github.com/refdata/ref-oracle/oracle/api/controllers"
	"github.com/refdata/ref-oracle/oracle/core"
	databaseaccess "github.com/refdata/ref-oracle/oracle/database_access"
	"github.com/refdata/ref-oracle/oracle/relay"
	"github.com/refdata/ref-oracle/oracle/resolver"
	"github.com/refdata/ref-oracle/telemetry"
)

const (
	MainComponentName = "refstore"
)

type OracleImpl struct {
	ctx       context.Context
	db        core.Database
	api       apiCore.API
	telemetry *telemetry.Telemetry
	logger    hclog.Logger
	errorCh   chan error
}

var _ core.Oracle = (*OracleImpl)(nil)

func NewOracle(
	ctx context.Context,
	appConfig *core.AppConfig,
	logger hclog.Logger,
) (*OracleImpl, error) {
	telemetry := telemetry.NewTelemetry(appConfig.Telemetry, logger.Named("telemetry"))

	db, err := databaseaccess.NewDatabase(
		filepath.Join(appConfig.Settings.DbsPath, MainComponentName+".db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open ref store database: %w", err)
	}

	refResolver := resolver.NewRefResolver(db, logger.Named("resolver"))
	relayProcessor := relay.NewRelayProcessor(db, appConfig.Relay, logger.Named("relay"))

	apiControllers := []apiCore.APIController{
		controllers.NewRefDataController(
			db, refResolver, relayProcessor, logger.Named("ref_data_controller")),
	}

	apiObj, err := api.NewAPI(ctx, appConfig.APIConfig, apiControllers, logger.Named("api"))
	if err != nil {
		return nil, fmt.Errorf("failed to create api: %w", err)
	}

	return &OracleImpl{
		ctx:       ctx,
		db:        db,
		api:       apiObj,
		telemetry: telemetry,
		logger:    logger,
		errorCh:   make(chan error, 1),
	}, nil
}

func (o *OracleImpl) Start() error {
	o.logger.Debug("Starting Oracle")

	if err := o.telemetry.Start(); err != nil {
		return fmt.Errorf("failed to start telemetry: %w", err)
	}

	go o.api.Start()

	o.logger.Debug("Started Oracle")

	return nil
}

func (o *OracleImpl) Dispose() error {
	var errs []error

	if err := o.api.Dispose(); err != nil {
		errs = append(errs, fmt.Errorf("error while disposing api: %w", err))
	}

	if err := o.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error while closing ref store database: %w", err))
	}

	if o.telemetry.IsEnabled() {
		if err := o.telemetry.Close(context.Background()); err != nil {
			errs = append(errs, fmt.Errorf("error while closing telemetry: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while disposing oracle: %w", errors.Join(errs...))
	}

	return nil
}

func (o *OracleImpl) ErrorCh() <-chan error {
	return o.errorCh
}
