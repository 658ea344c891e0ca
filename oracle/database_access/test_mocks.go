package databaseaccess

import (
	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/stretchr/testify/mock"
)

type DBMock struct {
	mock.Mock
}

// UpdateRefs implements core.RefStoreDB.
func (m *DBMock) UpdateRefs(entries []core.RefEntry) error {
	args := m.Called(entries)

	return args.Error(0)
}

// GetRef implements core.RefStoreDB.
func (m *DBMock) GetRef(symbol string) (*core.RefData, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(*core.RefData)

	return arg0, args.Error(1)
}

// GetAllRefs implements core.RefStoreDB.
func (m *DBMock) GetAllRefs() (map[string]core.RefData, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(map[string]core.RefData)

	return arg0, args.Error(1)
}

// Init implements core.Database.
func (m *DBMock) Init(filePath string) error {
	args := m.Called(filePath)

	return args.Error(0)
}

// Close implements core.Database.
func (m *DBMock) Close() error {
	args := m.Called()

	return args.Error(0)
}

var _ core.Database = (*DBMock)(nil)
