package response

import "github.com/refdata/ref-oracle/oracle/core"

type RelayResponse struct {
	SymbolsUpdated int `json:"symbolsUpdated"`
}

type RefsResponse struct {
	Refs map[string]core.RefData `json:"refs"`
}

func NewRefsResponse(refs map[string]core.RefData) *RefsResponse {
	return &RefsResponse{Refs: refs}
}

// ReferenceDataResponse carries the three arbitrary-precision result fields
// as decimal strings.
type ReferenceDataResponse struct {
	Rate             string `json:"rate"`
	LastUpdatedBase  string `json:"lastUpdatedBase"`
	LastUpdatedQuote string `json:"lastUpdatedQuote"`
}

func NewReferenceDataResponse(refData *core.ReferenceData) *ReferenceDataResponse {
	return &ReferenceDataResponse{
		Rate:             refData.Rate.String(),
		LastUpdatedBase:  refData.LastUpdatedBase.String(),
		LastUpdatedQuote: refData.LastUpdatedQuote.String(),
	}
}
