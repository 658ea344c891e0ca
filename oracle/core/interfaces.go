package core

type RefStoreDB interface {
	// UpdateRefs inserts or overwrites the records for all entries in one
	// atomic transaction. A later entry for the same symbol wins.
	UpdateRefs(entries []RefEntry) error
	// GetRef returns the stored record for a symbol, or nil when the symbol
	// is unknown. Absence is not an error at the store layer.
	GetRef(symbol string) (*RefData, error)
	GetAllRefs() (map[string]RefData, error)
}

type Database interface {
	RefStoreDB
	Init(filePath string) error
	Close() error
}

type RelayProcessor interface {
	Relay(relayer string, symbols []string, rates []uint64, resolveTimes []uint64, requestIDs []uint64) error
}

type RefResolver interface {
	Resolve(symbol string, currentTime uint64) (ResolvedPair, error)
	GetReferenceData(base string, quote string, currentTime uint64) (*ReferenceData, error)
}

type Oracle interface {
	Start() error
	Dispose() error
	ErrorCh() <-chan error
}
