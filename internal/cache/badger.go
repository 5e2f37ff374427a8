package cache

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger"
)

type BadgerCache struct {
	db  *badger.DB
	TTL time.Duration
}

func NewBadgerCache(db *badger.DB, ttl time.Duration) BadgerCache {
	return BadgerCache{db: db, TTL: ttl}
}

func (c *BadgerCache) putItem(key string, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value).WithTTL(c.TTL)
		err := txn.SetEntry(e)
		return err
	})
}

func (c *BadgerCache) Set(key string, value any) error {
	slog.Debug("writing to badger cache", slog.String("key", key))
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.putItem(key, bytes)
}

func (c *BadgerCache) getItem(key string) ([]byte, error) {
	var bytes []byte = nil
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		bytes, err = item.ValueCopy(bytes)
		if err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	return bytes, err
}

func (c *BadgerCache) Get(key string, value any) (bool, error) {
	bytes, err := c.getItem(key)
	if err != nil {
		slog.Error("checking badger cache", slog.String("key", key), slog.Any("error", err))
		return false, err
	}
	if bytes == nil {
		slog.Debug("not found in badger cache", slog.String("key", key))
		return false, nil
	}
	slog.Debug("found in badger cache", slog.String("key", key))
	return true, json.Unmarshal(bytes, value)
}
