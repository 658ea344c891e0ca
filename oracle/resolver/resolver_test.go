package resolver

import (
	"math"
	"math/big"
	"os"
	"path"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/refdata/ref-oracle/oracle/core"
	databaseaccess "github.com/refdata/ref-oracle/oracle/database_access"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) core.Database {
	t.Helper()

	testDir, err := os.MkdirTemp("", "resolver-test")
	require.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(testDir)
	})

	db := &databaseaccess.BBoltDatabase{}
	require.NoError(t, db.Init(path.Join(testDir, "refs.db")))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	r := NewRefResolver(db, hclog.NewNullLogger())

	err := db.UpdateRefs([]core.RefEntry{
		{Symbol: "ETH", RefData: core.RefData{Rate: 1, ResolveTime: 2, RequestID: 3}},
		{Symbol: "STALE", RefData: core.RefData{Rate: 55, ResolveTime: 0, RequestID: 4}},
	})
	require.NoError(t, err)

	t.Run("anchor symbol is hardcoded", func(t *testing.T) {
		for _, currentTime := range []uint64{0, 1, 1571797419879305533, math.MaxUint64} {
			pair, err := r.Resolve("USD", currentTime)
			require.NoError(t, err)
			require.Equal(t, core.ResolvedPair{Rate: 1_000_000_000, LastUpdate: currentTime}, pair)
		}
	})

	t.Run("stored symbol", func(t *testing.T) {
		pair, err := r.Resolve("ETH", 12345)
		require.NoError(t, err)
		require.Equal(t, core.ResolvedPair{Rate: 1, LastUpdate: 2}, pair)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := r.Resolve("DOGE", 12345)
		require.ErrorIs(t, err, core.ErrUnknownSymbol)
	})

	t.Run("never resolved symbol", func(t *testing.T) {
		_, err := r.Resolve("STALE", 12345)
		require.ErrorIs(t, err, core.ErrRefDataNotAvailable)
	})
}

func TestGetReferenceData(t *testing.T) {
	db := newTestDB(t)
	r := NewRefResolver(db, hclog.NewNullLogger())

	err := db.UpdateRefs([]core.RefEntry{
		{Symbol: "MATIC", RefData: core.RefData{Rate: 112, ResolveTime: 1625108298000000000, RequestID: 124}},
		{Symbol: "ZERO", RefData: core.RefData{Rate: 0, ResolveTime: 77, RequestID: 5}},
		{Symbol: "STALE", RefData: core.RefData{Rate: 55, ResolveTime: 0, RequestID: 6}},
	})
	require.NoError(t, err)

	t.Run("usd against matic", func(t *testing.T) {
		currentTime := uint64(1571797419879305533)

		refData, err := r.GetReferenceData("USD", "MATIC", currentTime)
		require.NoError(t, err)

		expectedRate, ok := new(big.Int).SetString("8928571428571428571428571", 10)
		require.True(t, ok)

		require.Equal(t, expectedRate, refData.Rate)
		require.Equal(t, new(big.Int).SetUint64(1571797419879305533), refData.LastUpdatedBase)
		require.Equal(t, new(big.Int).SetUint64(1625108298000000000), refData.LastUpdatedQuote)
	})

	t.Run("numerator cannot overflow", func(t *testing.T) {
		err := db.UpdateRefs([]core.RefEntry{
			{Symbol: "MAX", RefData: core.RefData{Rate: math.MaxUint64, ResolveTime: 1, RequestID: 7}},
		})
		require.NoError(t, err)

		refData, err := r.GetReferenceData("MAX", "MATIC", 1)
		require.NoError(t, err)

		// floor(maxuint64 * 1e18 / 112)
		expected := new(big.Int).SetUint64(math.MaxUint64)
		expected.Mul(expected, core.RateScale())
		expected.Quo(expected, big.NewInt(112))

		require.Equal(t, expected, refData.Rate)
	})

	t.Run("scale consistency", func(t *testing.T) {
		forward, err := r.GetReferenceData("USD", "MATIC", 1)
		require.NoError(t, err)

		backward, err := r.GetReferenceData("MATIC", "USD", 1)
		require.NoError(t, err)

		// forward * backward == 1e36 up to truncation error
		product := new(big.Int).Mul(forward.Rate, backward.Rate)
		scaleSquared := new(big.Int).Mul(core.RateScale(), core.RateScale())

		diff := new(big.Int).Sub(scaleSquared, product)
		require.True(t, diff.Sign() >= 0)
		require.True(t, diff.Cmp(big.NewInt(1_000_000_000_000)) < 0)
	})

	t.Run("propagates base resolution failure", func(t *testing.T) {
		_, err := r.GetReferenceData("DOGE", "MATIC", 1)
		require.ErrorIs(t, err, core.ErrUnknownSymbol)
	})

	t.Run("propagates quote resolution failure", func(t *testing.T) {
		_, err := r.GetReferenceData("MATIC", "STALE", 1)
		require.ErrorIs(t, err, core.ErrRefDataNotAvailable)
	})

	t.Run("zero quote rate", func(t *testing.T) {
		_, err := r.GetReferenceData("MATIC", "ZERO", 1)
		require.ErrorIs(t, err, core.ErrDivisionByZero)
	})
}
