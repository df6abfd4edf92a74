package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type KV struct {
	db *badger.DB
}

func NewKV(db *badger.DB) *KV {
	return &KV{
		db: db,
	}
}

// Get returns found=false when the key is absent.
func (s *KV) Get(key string) (value []byte, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("Get: %w", err)
	}

	return value, true, nil
}

// SetMany writes all pairs in one transaction.
func (s *KV) SetMany(pairs map[string][]byte) (err error) {
	if err = s.db.Update(func(txn *badger.Txn) error {
		for key, value := range pairs {
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("SetMany: %w", err)
	}

	return nil
}

func (s *KV) Delete(keys ...string) (err error) {
	if err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	return nil
}

func (s *KV) GetJSON(key string, target any) (found bool, err error) {
	value, found, err := s.Get(key)
	if err != nil || !found {
		return found, err
	}

	if err = json.Unmarshal(value, target); err != nil {
		return true, fmt.Errorf("GetJSON: %w", err)
	}

	return true, nil
}

func (s *KV) SetJSON(key string, value any) (err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("SetJSON: %w", err)
	}

	return s.SetMany(map[string][]byte{key: data})
}
