// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/ammvm/actions"
	"github.com/ava-labs/ammvm/chain"
	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/config"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/pebble"
	"github.com/ava-labs/ammvm/pricing"
	"github.com/ava-labs/ammvm/storage"
	"github.com/ava-labs/ammvm/tstate"
)

// changedKeysEstimate sizes the pending change set; no action touches more
// keys than this.
const changedKeysEstimate = 16

var actionNames = map[uint8]string{
	consts.CreateAssetID:     "create_asset",
	consts.MintAssetID:       "mint_asset",
	consts.TransferAssetID:   "transfer_asset",
	consts.InitializeID:      "initialize",
	consts.AddLiquidityID:    "add_liquidity",
	consts.RemoveLiquidityID: "remove_liquidity",
	consts.SwapID:            "swap",
	consts.SetLockedID:       "set_locked",
}

func actionName(typeID uint8) string {
	if name, ok := actionNames[typeID]; ok {
		return name
	}
	return "unknown"
}

// Controller owns the ledger database and applies actions to it one at a
// time. Every accepted action is persisted in a single batch before
// [Controller.Execute] returns.
type Controller struct {
	log     logging.Logger
	metrics *metrics
	db      *pebble.Database

	l         sync.Mutex
	closed    bool
	ts        *tstate.TState
	processor *chain.Processor
}

func New(cfg *config.Config, log logging.Logger, registerer prometheus.Registerer) (*Controller, error) {
	if !cfg.Metrics.Enabled {
		registerer = prometheus.NewRegistry()
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	db, err := storage.New(cfg.GetDBConfig(), cfg.DataDir, registerer)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pools, err := storage.CountPools(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	m.pools.Set(float64(pools))

	ts := tstate.New(changedKeysEstimate)
	processor, err := chain.NewProcessor(log, registerer, db, ts, cfg.GetRules())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("ledger opened",
		zap.String("dataDir", cfg.DataDir),
		zap.Int("pools", pools),
		zap.Bool("allowLockedWithdrawals", cfg.Rules.AllowLockedWithdrawals),
	)
	return &Controller{
		log:       log,
		metrics:   m,
		db:        db,
		ts:        ts,
		processor: processor,
	}, nil
}

// Execute runs [action] for [actor] at [timestamp] (unix milliseconds).
// A rejected action returns its error and leaves the ledger unchanged.
func (c *Controller) Execute(
	ctx context.Context,
	action chain.Action,
	actor codec.Address,
	timestamp int64,
) (*chain.Result, error) {
	if action == nil {
		return nil, chain.ErrNilAction
	}
	c.l.Lock()
	defer c.l.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	defer c.ts.Reset()

	name := actionName(action.GetTypeID())
	result, err := c.processor.Execute(ctx, action, actor, timestamp)
	if err != nil {
		c.metrics.actions.WithLabelValues(name, resultRejected).Inc()
		if errors.Is(err, chain.ErrStateFetch) {
			c.log.Error("unable to read state",
				zap.String("action", name),
				zap.Error(err),
			)
		} else {
			c.log.Warn("action rejected",
				zap.String("action", name),
				zap.Stringer("actor", actor),
				zap.Error(err),
			)
		}
		return nil, err
	}
	if err := c.persist(); err != nil {
		c.metrics.actions.WithLabelValues(name, resultRejected).Inc()
		c.log.Error("unable to persist changes",
			zap.String("action", name),
			zap.Stringer("actionID", result.ActionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrPersistChanges, err)
	}

	c.metrics.actions.WithLabelValues(name, resultAccepted).Inc()
	c.log.Debug("action executed",
		zap.String("action", name),
		zap.Stringer("actionID", result.ActionID),
		zap.Stringer("actor", actor),
		zap.Int("changes", result.Changes),
	)
	c.observe(action, actor)
	return result, nil
}

func (c *Controller) persist() error {
	batch := c.db.NewBatch()
	defer batch.Close()

	if _, err := c.ts.WriteChanges(batch); err != nil {
		return err
	}
	return batch.Write()
}

// observe records pool lifecycle events of an accepted action.
func (c *Controller) observe(action chain.Action, actor codec.Address) {
	switch a := action.(type) {
	case *actions.Initialize:
		c.metrics.pools.Inc()
		c.log.Info("pool initialized",
			zap.Stringer("pool", storage.PoolAddress(a.Seed, a.AssetX, a.AssetY)),
			zap.Stringer("assetX", a.AssetX),
			zap.Stringer("assetY", a.AssetY),
			zap.Uint16("feeBps", a.FeeBps),
			zap.Stringer("actor", actor),
		)
	case *actions.SetLocked:
		c.log.Info("pool lock updated",
			zap.Stringer("pool", a.Pool),
			zap.Bool("locked", a.Locked),
		)
	case *actions.Swap:
		c.metrics.swapVolume.Add(float64(a.AmountIn))
	}
}

func (c *Controller) Pool(ctx context.Context, addr codec.Address) (*storage.Pool, error) {
	return storage.GetPool(ctx, c.db, addr)
}

func (c *Controller) Asset(ctx context.Context, addr codec.Address) (*storage.Asset, error) {
	return storage.GetAsset(ctx, c.db, addr)
}

func (c *Controller) Balance(ctx context.Context, asset codec.Address, account codec.Address) (uint64, error) {
	return storage.GetBalance(ctx, c.db, asset, account)
}

// Reserves returns the custody balances of the pool at [addr].
func (c *Controller) Reserves(ctx context.Context, addr codec.Address) (uint64, uint64, error) {
	pool, err := storage.GetPool(ctx, c.db, addr)
	if err != nil {
		return 0, 0, err
	}
	return storage.GetReserves(ctx, c.db, pool)
}

// Quote previews the output of swapping [amountIn] against the pool at
// [addr] without changing any state.
func (c *Controller) Quote(ctx context.Context, addr codec.Address, amountIn uint64, xToY bool) (uint64, error) {
	pool, err := storage.GetPool(ctx, c.db, addr)
	if err != nil {
		return 0, err
	}
	reserveX, reserveY, err := storage.GetReserves(ctx, c.db, pool)
	if err != nil {
		return 0, err
	}
	lp, err := storage.GetAsset(ctx, c.db, pool.LPAsset)
	if err != nil {
		return 0, err
	}
	curve, err := pricing.NewConstantProduct(reserveX, reserveY, lp.Supply, pool.FeeBps)
	if err != nil {
		return 0, err
	}
	return curve.Quote(amountIn, xToY)
}

// Close waits for any in-flight action and closes the database.
func (c *Controller) Close() error {
	c.l.Lock()
	defer c.l.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Info("closing ledger")
	return c.db.Close()
}
