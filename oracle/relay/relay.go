package relay

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/refdata/ref-oracle/telemetry"
)

type RelayProcessorImpl struct {
	db              core.RefStoreDB
	allowedRelayers map[ethcommon.Address]bool
	logger          hclog.Logger
}

var _ core.RelayProcessor = (*RelayProcessorImpl)(nil)

func NewRelayProcessor(
	db core.RefStoreDB, config core.RelayConfig, logger hclog.Logger,
) *RelayProcessorImpl {
	allowedRelayers := make(map[ethcommon.Address]bool, len(config.AllowedRelayers))
	for _, addr := range config.AllowedRelayers {
		allowedRelayers[ethcommon.HexToAddress(addr)] = true
	}

	return &RelayProcessorImpl{
		db:              db,
		allowedRelayers: allowedRelayers,
		logger:          logger,
	}
}

// Relay applies one batch of rate updates. The four arrays are positionally
// aligned; validation happens before any write, so a rejected batch leaves
// the store untouched.
func (rp *RelayProcessorImpl) Relay(
	relayer string, symbols []string, rates []uint64, resolveTimes []uint64, requestIDs []uint64,
) error {
	if err := rp.checkRelayer(relayer); err != nil {
		telemetry.UpdateRelayRejectedCounter(1)

		return err
	}

	length := len(symbols)
	if len(rates) != length || len(resolveTimes) != length || len(requestIDs) != length {
		telemetry.UpdateRelayRejectedCounter(1)

		return fmt.Errorf("%w: symbols %d, rates %d, resolve times %d, request ids %d",
			core.ErrMismatchedBatchLength, length, len(rates), len(resolveTimes), len(requestIDs))
	}

	entries := make([]core.RefEntry, length)
	for idx := 0; idx < length; idx++ {
		entries[idx] = core.RefEntry{
			Symbol: symbols[idx],
			RefData: core.RefData{
				Rate:        rates[idx],
				ResolveTime: resolveTimes[idx],
				RequestID:   requestIDs[idx],
			},
		}
	}

	if err := rp.db.UpdateRefs(entries); err != nil {
		return fmt.Errorf("failed to update refs: %w", err)
	}

	telemetry.UpdateRelayBatchCounter(1)
	telemetry.UpdateRelaySymbolsCounter(length)

	rp.logger.Info("Relay batch applied", "relayer", relayer, "symbols", length)

	return nil
}

func (rp *RelayProcessorImpl) checkRelayer(relayer string) error {
	if len(rp.allowedRelayers) == 0 {
		return nil
	}

	if !ethcommon.IsHexAddress(relayer) {
		return fmt.Errorf("%w: invalid address %q", core.ErrRelayerNotAuthorized, relayer)
	}

	if !rp.allowedRelayers[ethcommon.HexToAddress(relayer)] {
		return fmt.Errorf("%w: %s", core.ErrRelayerNotAuthorized, relayer)
	}

	return nil
}
