// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/state"
	"github.com/ava-labs/ammvm/tstate"
	"github.com/ava-labs/ammvm/utils"
)

// Processor applies actions one at a time on top of [state.Immutable].
// Each action runs in its own [tstate.TStateView]: either every change it
// made is committed to the shared [tstate.TState] or none is.
//
// Processor is not safe for concurrent use.
type Processor struct {
	log     logging.Logger
	metrics *processorMetrics

	im state.Immutable
	ts *tstate.TState
	r  Rules
}

func NewProcessor(
	log logging.Logger,
	registerer prometheus.Registerer,
	im state.Immutable,
	ts *tstate.TState,
	r Rules,
) (*Processor, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		metrics: m,
		im:      im,
		ts:      ts,
		r:       WithDefaults(r),
	}, nil
}

// ActionID deterministically identifies [action] submitted by [actor] at
// [timestamp].
func ActionID(action Action, actor codec.Address, timestamp int64) (ids.ID, error) {
	size := action.Size()
	if size > MaxActionSize {
		return ids.Empty, ErrActionTooLarge
	}
	p := codec.NewWriter(actionIDPrefixLen+size, actionIDPrefixLen+MaxActionSize)
	p.PackByte(action.GetTypeID())
	p.PackAddress(actor)
	p.PackInt64(timestamp)
	action.Marshal(p)
	if err := p.Err(); err != nil {
		return ids.Empty, err
	}
	return utils.ToID(p.Bytes()), nil
}

// fetch reads the current value of every key in [scope]. Keys that do not
// exist yet are omitted.
func (p *Processor) fetch(ctx context.Context, scope state.Keys) (map[string][]byte, error) {
	storage := make(map[string][]byte, len(scope))
	for k := range scope {
		v, err := p.im.GetValue(ctx, []byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStateFetch, err)
		}
		storage[k] = v
	}
	return storage, nil
}

// Execute runs [action] for [actor]. On success the changes are committed
// to the processor's [tstate.TState]; on failure the action error is
// returned and no change is visible.
func (p *Processor) Execute(
	ctx context.Context,
	action Action,
	actor codec.Address,
	timestamp int64,
) (*Result, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	actionID, err := ActionID(action, actor, timestamp)
	if err != nil {
		return nil, err
	}
	scope := action.StateKeys(actor)
	storage, err := p.fetch(ctx, scope)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	tsv := p.ts.NewView(scope, storage)
	outputs, err := action.Execute(ctx, p.r, tsv, timestamp, actor, actionID)
	p.metrics.executeTime.Observe(float64(time.Since(start)))
	if err != nil {
		tsv.Rollback(ctx, 0)
		p.metrics.actionsFailed.Inc()
		p.log.Debug("action rejected",
			zap.Uint8("typeID", action.GetTypeID()),
			zap.Stringer("actionID", actionID),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}

	changes := tsv.PendingChanges()
	p.metrics.stateOperations.Add(float64(tsv.OpIndex()))
	p.metrics.stateChanges.Add(float64(changes))
	tsv.Commit()
	p.metrics.actionsExecuted.Inc()
	return &Result{
		ActionID: actionID,
		Outputs:  outputs,
		Changes:  changes,
	}, nil
}
