package resolver

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-hclog"
	"github.com/refdata/ref-oracle/oracle/core"
)

type RefResolverImpl struct {
	db     core.RefStoreDB
	logger hclog.Logger
}

var _ core.RefResolver = (*RefResolverImpl)(nil)

func NewRefResolver(db core.RefStoreDB, logger hclog.Logger) *RefResolverImpl {
	return &RefResolverImpl{
		db:     db,
		logger: logger,
	}
}

// Resolve translates a symbol into a (rate, last update) pair. The anchor
// symbol is never looked up in the store: its rate is fixed and its last
// update is the resolution instant supplied by the caller.
func (r *RefResolverImpl) Resolve(symbol string, currentTime uint64) (core.ResolvedPair, error) {
	if symbol == core.AnchorSymbol {
		return core.ResolvedPair{
			Rate:       core.AnchorRate,
			LastUpdate: currentTime,
		}, nil
	}

	refData, err := r.db.GetRef(symbol)
	if err != nil {
		return core.ResolvedPair{}, fmt.Errorf("failed to read ref data for %s: %w", symbol, err)
	}

	if refData == nil {
		return core.ResolvedPair{}, fmt.Errorf("%w: %s", core.ErrUnknownSymbol, symbol)
	}

	if refData.ResolveTime == 0 {
		return core.ResolvedPair{}, fmt.Errorf("%w: %s", core.ErrRefDataNotAvailable, symbol)
	}

	return core.ResolvedPair{
		Rate:       refData.Rate,
		LastUpdate: refData.ResolveTime,
	}, nil
}

// GetReferenceData resolves both sides independently and combines them into
// a scaled cross-rate. The numerator is widened to big.Int before the 1e18
// multiplication, so it cannot overflow for any pair of uint64 rates.
// Division truncates toward zero.
func (r *RefResolverImpl) GetReferenceData(
	base string, quote string, currentTime uint64,
) (*core.ReferenceData, error) {
	baseRefData, err := r.Resolve(base, currentTime)
	if err != nil {
		return nil, err
	}

	quoteRefData, err := r.Resolve(quote, currentTime)
	if err != nil {
		return nil, err
	}

	if quoteRefData.Rate == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrDivisionByZero, quote)
	}

	rate := new(big.Int).SetUint64(baseRefData.Rate)
	rate.Mul(rate, core.RateScale())
	rate.Quo(rate, new(big.Int).SetUint64(quoteRefData.Rate))

	r.logger.Debug("resolved reference data",
		"base", base, "quote", quote, "rate", rate.String())

	return &core.ReferenceData{
		Rate:             rate,
		LastUpdatedBase:  new(big.Int).SetUint64(baseRefData.LastUpdate),
		LastUpdatedQuote: new(big.Int).SetUint64(quoteRefData.LastUpdate),
	}, nil
}
