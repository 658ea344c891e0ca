package clirefs

import (
	"fmt"

	"github.com/refdata/ref-oracle/common"
	databaseaccess "github.com/refdata/ref-oracle/oracle/database_access"
	"github.com/spf13/cobra"
)

const (
	dbFlag = "db"

	dbFlagDesc = "path to the ref store database file"
)

type refsParams struct {
	db string
}

func (p *refsParams) validateFlags() error {
	if p.db == "" {
		return fmt.Errorf("--%s not specified", dbFlag)
	}

	return nil
}

func (p *refsParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&p.db,
		dbFlag,
		"",
		dbFlagDesc,
	)
}

func (p *refsParams) Execute(_ common.OutputFormatter) (common.ICommandResult, error) {
	db := &databaseaccess.BBoltDatabase{}
	if err := db.Init(p.db); err != nil {
		return nil, fmt.Errorf("failed to open ref store database: %w", err)
	}

	defer db.Close()

	refs, err := db.GetAllRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to read refs: %w", err)
	}

	return &CmdResult{refs: refs}, nil
}
