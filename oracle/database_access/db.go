package databaseaccess

import (
	"fmt"

	"github.com/refdata/ref-oracle/common"
	"github.com/refdata/ref-oracle/oracle/core"
)

func NewDatabase(filePath string) (core.Database, error) {
	if err := common.CreateDirectoryIfNotExists(filePath, 0770); err != nil {
		return nil, fmt.Errorf("failed to create directory for ref store database: %w", err)
	}

	db := &BBoltDatabase{}
	if err := db.Init(filePath); err != nil {
		return nil, err
	}

	return db, nil
}
