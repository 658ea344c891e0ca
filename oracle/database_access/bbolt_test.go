package databaseaccess

import (
	"os"
	"path"
	"testing"

	"github.com/refdata/ref-oracle/oracle/core"
	"github.com/stretchr/testify/require"
)

func TestBoltDatabase(t *testing.T) {
	testDir, err := os.MkdirTemp("", "boltdb-test")
	require.NoError(t, err)

	defer func() {
		os.RemoveAll(testDir)
		os.Remove(testDir)
	}()

	filePath := path.Join(testDir, "temp_test.db")

	dbCleanup := func() {
		if _, err := os.Stat(filePath); err == nil {
			os.Remove(filePath)
		}
	}

	t.Run("Init", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)
	})

	t.Run("Init should fail", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init("")
		require.Error(t, err)
	})

	t.Run("Close", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		err = db.Close()
		require.NoError(t, err)
	})

	t.Run("UpdateRefs", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "ETH", RefData: core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}},
			{Symbol: "BAND", RefData: core.RefData{Rate: 100, ResolveTime: 200, RequestID: 300}},
		})
		require.NoError(t, err)
	})

	t.Run("GetRef", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		res, err := db.GetRef("ETH")
		require.NoError(t, err)
		require.Nil(t, res)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "ETH", RefData: core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}},
		})
		require.NoError(t, err)

		res, err = db.GetRef("ETH")
		require.NoError(t, err)
		require.NotNil(t, res)
		require.Equal(t, &core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}, res)
	})

	t.Run("GetRef is case sensitive", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "ETH", RefData: core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}},
		})
		require.NoError(t, err)

		res, err := db.GetRef("eth")
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("UpdateRefs overwrites whole record", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "MATIC", RefData: core.RefData{Rate: 12, ResolveTime: 124824, RequestID: 69}},
		})
		require.NoError(t, err)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "MATIC", RefData: core.RefData{Rate: 24, ResolveTime: 124825, RequestID: 70}},
		})
		require.NoError(t, err)

		res, err := db.GetRef("MATIC")
		require.NoError(t, err)
		require.Equal(t, &core.RefData{Rate: 24, ResolveTime: 124825, RequestID: 70}, res)
	})

	t.Run("UpdateRefs last duplicate wins", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "MATIC", RefData: core.RefData{Rate: 12, ResolveTime: 1, RequestID: 1}},
			{Symbol: "MATIC", RefData: core.RefData{Rate: 24, ResolveTime: 2, RequestID: 2}},
		})
		require.NoError(t, err)

		res, err := db.GetRef("MATIC")
		require.NoError(t, err)
		require.Equal(t, &core.RefData{Rate: 24, ResolveTime: 2, RequestID: 2}, res)
	})

	t.Run("GetAllRefs", func(t *testing.T) {
		t.Cleanup(dbCleanup)

		db := &BBoltDatabase{}
		err := db.Init(filePath)
		require.NoError(t, err)

		res, err := db.GetAllRefs()
		require.NoError(t, err)
		require.Empty(t, res)

		err = db.UpdateRefs([]core.RefEntry{
			{Symbol: "ETH", RefData: core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}},
			{Symbol: "BAND", RefData: core.RefData{Rate: 100, ResolveTime: 200, RequestID: 300}},
		})
		require.NoError(t, err)

		res, err = db.GetAllRefs()
		require.NoError(t, err)
		require.Equal(t, map[string]core.RefData{
			"ETH":  {Rate: 1, ResolveTime: 2, RequestID: 3},
			"BAND": {Rate: 100, ResolveTime: 200, RequestID: 300},
		}, res)
	})
}
