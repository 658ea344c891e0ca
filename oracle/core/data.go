package core

import "math/big"

const (
	// AnchorSymbol is the quote-currency anchor whose rate is never stored.
	AnchorSymbol = "USD"

	// AnchorRate is one unit of the anchor in the oracle fixed-point base (1e9).
	AnchorRate = uint64(1_000_000_000)
)

// RateScale is the 1e18 multiplier applied to the cross-rate numerator.
func RateScale() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
}

// RefData is the stored rate record for one symbol.
type RefData struct {
	Rate        uint64 `cbor:"r" json:"rate"`
	ResolveTime uint64 `cbor:"t" json:"resolveTime"`
	RequestID   uint64 `cbor:"i" json:"requestID"`
}

// RefEntry is one positional element of a relay batch.
type RefEntry struct {
	Symbol string
	RefData
}

// ResolvedPair is the result of resolving a single symbol, either from the
// store or from the anchor rule.
type ResolvedPair struct {
	Rate       uint64
	LastUpdate uint64
}

// ReferenceData is the result of a cross-rate query. All fields share the
// same arbitrary-precision representation.
type ReferenceData struct {
	Rate             *big.Int
	LastUpdatedBase  *big.Int
	LastUpdatedQuote *big.Int
}
