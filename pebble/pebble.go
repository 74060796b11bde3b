// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/ammvm/state"
)

var _ state.Immutable = (*Database)(nil)

type Config struct {
	CacheSize                   int64 `json:"cacheSize"`
	BytesPerSync                int   `json:"bytesPerSync"`
	WALBytesPerSync             int   `json:"walBytesPerSync"` // 0 means no background syncing
	MemTableStopWritesThreshold int   `json:"memTableStopWritesThreshold"`
	MaxOpenFiles                int   `json:"maxOpenFiles"`
	ConcurrentCompactions       int   `json:"concurrentCompactions"`
	Sync                        bool  `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                512 * units.KiB,
		WALBytesPerSync:             0,
		MemTableStopWritesThreshold: 8,
		MaxOpenFiles:                1_024,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

// Database is the on-disk store behind the ledger. Missing keys are
// reported as [database.ErrNotFound].
type Database struct {
	db      *pebble.DB
	metrics *metrics
	wo      *pebble.WriteOptions

	closeOnce sync.Once
	closing   chan struct{}
	closed    chan struct{}
}

func New(file string, cfg Config, reg prometheus.Registerer) (*Database, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	db := &Database{
		metrics: m,
		closing: make(chan struct{}),
		closed:  make(chan struct{}),
	}
	if cfg.Sync {
		db.wo = pebble.Sync
	} else {
		db.wo = pebble.NoSync
	}

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		Comparer:                    pebble.DefaultComparer,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		EventListener: &pebble.EventListener{
			CompactionBegin: db.onCompactionBegin,
			CompactionEnd:   db.onCompactionEnd,
			WriteStallBegin: db.onWriteStallBegin,
			WriteStallEnd:   db.onWriteStallEnd,
		},
	}
	d, err := pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}
	db.db = d
	go db.collectMetrics()
	return db, nil
}

// Get returns a copy of the value stored at [key].
func (db *Database) Get(key []byte) ([]byte, error) {
	start := time.Now()
	v, closer, err := db.db.Get(key)
	db.metrics.observeRead(start)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value, closer.Close()
}

// GetValue implements [state.Immutable].
func (db *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return db.Get(key)
}

func (db *Database) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (db *Database) Put(key []byte, value []byte) error {
	return db.db.Set(key, value, db.wo)
}

func (db *Database) Delete(key []byte) error {
	return db.db.Delete(key, db.wo)
}

// CountPrefix returns the number of keys starting with [prefix].
func (db *Database) CountPrefix(prefix []byte) (int, error) {
	start := time.Now()
	iter, err := db.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return 0, err
	}
	count := 0
	for valid := iter.First(); valid; valid = iter.Next() {
		count++
	}
	if err := iter.Error(); err != nil {
		_ = iter.Close()
		return 0, err
	}
	db.metrics.observeScan(start, count)
	return count, iter.Close()
}

// prefixUpperBound returns the smallest key greater than every key with
// [prefix], or nil if there is none.
func prefixUpperBound(prefix []byte) []byte {
	end := slices.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (db *Database) NewBatch() *Batch {
	return &Batch{db: db, b: db.db.NewBatch()}
}

func (db *Database) Close() error {
	var err error
	db.closeOnce.Do(func() {
		close(db.closing)
		<-db.closed
		err = db.db.Close()
	})
	return err
}

// Batch buffers writes until [Batch.Write]. Writes of a batch are applied
// atomically.
type Batch struct {
	db *Database
	b  *pebble.Batch
}

func (b *Batch) Put(key []byte, value []byte) error {
	return b.b.Set(key, value, nil)
}

func (b *Batch) Delete(key []byte) error {
	return b.b.Delete(key, nil)
}

// Size returns the number of bytes buffered in the batch.
func (b *Batch) Size() int {
	return b.b.Len()
}

func (b *Batch) Write() error {
	size, start := b.b.Len(), time.Now()
	if err := b.b.Commit(b.db.wo); err != nil {
		return err
	}
	b.db.metrics.observeCommit(start, size)
	return nil
}

// Close releases the batch. It must be called whether or not
// [Batch.Write] succeeded.
func (b *Batch) Close() error {
	return b.b.Close()
}
