package databaseaccess

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/refdata/ref-oracle/oracle/core"
	"go.etcd.io/bbolt"
)

var (
	refsBucket = []byte("Refs")
)

type BBoltDatabase struct {
	db *bbolt.DB
}

var _ core.Database = (*BBoltDatabase)(nil)

func (bd *BBoltDatabase) Init(filePath string) error {
	db, err := bbolt.Open(filePath, 0660, nil)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}

	bd.db = db

	return db.Update(func(tx *bbolt.Tx) error {
		for _, bn := range [][]byte{refsBucket} {
			_, err := tx.CreateBucketIfNotExists(bn)
			if err != nil {
				return fmt.Errorf("could not bucket: %s, err: %w", string(bn), err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) Close() error {
	return bd.db.Close()
}

func (bd *BBoltDatabase) UpdateRefs(entries []core.RefEntry) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		for _, entry := range entries {
			bytes, err := cbor.Marshal(entry.RefData)
			if err != nil {
				return fmt.Errorf("could not marshal ref data for %s: %w", entry.Symbol, err)
			}

			if err := tx.Bucket(refsBucket).Put([]byte(entry.Symbol), bytes); err != nil {
				return fmt.Errorf("ref data write error for %s: %w", entry.Symbol, err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) GetRef(symbol string) (*core.RefData, error) {
	var result *core.RefData

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(refsBucket).Get([]byte(symbol))
		if bytes == nil {
			return nil
		}

		result = &core.RefData{}
		if err := cbor.Unmarshal(bytes, result); err != nil {
			return fmt.Errorf("could not unmarshal ref data for %s: %w", symbol, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (bd *BBoltDatabase) GetAllRefs() (map[string]core.RefData, error) {
	result := map[string]core.RefData{}

	err := bd.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(refsBucket).ForEach(func(k, v []byte) error {
			var refData core.RefData

			if err := cbor.Unmarshal(v, &refData); err != nil {
				return fmt.Errorf("could not unmarshal ref data for %s: %w", string(k), err)
			}

			result[string(k)] = refData

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
