package request

type RelayRequest struct {
	Relayer      string   `json:"relayer,omitempty"`
	Symbols      []string `json:"symbols"`
	Rates        []uint64 `json:"rates"`
	ResolveTimes []uint64 `json:"resolveTimes"`
	RequestIDs   []uint64 `json:"requestIDs"`
}
