// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/utils/maybe"
	"golang.org/x/exp/maps"

	"github.com/ava-labs/ammvm/keys"
)

// TState defines a struct for storing temporary state. Views commit into
// it and the owner flushes it to disk with [TState.WriteChanges].
type TState struct {
	l           sync.RWMutex
	changedKeys map[string]maybe.Maybe[[]byte]
	ops         int
}

// Writer receives the flushed changes of a [TState]. A database batch
// satisfies it.
type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

// New returns a new instance of TState.
//
// [changedSize] is an estimate of the number of keys that will be changed.
func New(changedSize int) *TState {
	return &TState{changedKeys: make(map[string]maybe.Maybe[[]byte], changedSize)}
}

func (ts *TState) getChangedValue(key string) ([]byte, bool, bool) {
	ts.l.RLock()
	defer ts.l.RUnlock()

	if v, ok := ts.changedKeys[key]; ok {
		if v.IsNothing() {
			return nil, true, false
		}
		return v.Value(), true, true
	}
	return nil, false, false
}

// Insert should only be called if you know what you are doing (updates
// here bypass scope checks and are not journaled).
func (ts *TState) Insert(key, value []byte) error {
	if !keys.VerifyValue(key, value) {
		return ErrInvalidKeyValue
	}

	ts.l.Lock()
	defer ts.l.Unlock()

	ts.changedKeys[string(key)] = maybe.Some(value)
	return nil
}

// OpIndex returns the number of operations committed by views.
func (ts *TState) OpIndex() int {
	ts.l.RLock()
	defer ts.l.RUnlock()

	return ts.ops
}

// PendingChanges returns the number of keys changed since the last flush.
func (ts *TState) PendingChanges() int {
	ts.l.RLock()
	defer ts.l.RUnlock()

	return len(ts.changedKeys)
}

// WriteChanges writes every changed key to [w] in key order and returns
// the number of keys written. Changes are kept until [TState.Reset].
func (ts *TState) WriteChanges(w Writer) (int, error) {
	ts.l.RLock()
	defer ts.l.RUnlock()

	changed := maps.Keys(ts.changedKeys)
	slices.Sort(changed)
	for _, k := range changed {
		v := ts.changedKeys[k]
		if v.IsNothing() {
			if err := w.Delete([]byte(k)); err != nil {
				return 0, err
			}
			continue
		}
		if err := w.Put([]byte(k), v.Value()); err != nil {
			return 0, err
		}
	}
	return len(changed), nil
}

// Reset drops all committed changes, typically after they were persisted.
func (ts *TState) Reset() {
	ts.l.Lock()
	defer ts.l.Unlock()

	ts.changedKeys = make(map[string]maybe.Maybe[[]byte], len(ts.changedKeys))
	ts.ops = 0
}
