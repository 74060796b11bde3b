// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type processorMetrics struct {
	actionsExecuted prometheus.Counter
	actionsFailed   prometheus.Counter
	stateChanges    prometheus.Counter
	stateOperations prometheus.Counter

	executeTime metric.Averager
}

func newMetrics(r prometheus.Registerer) (*processorMetrics, error) {
	executeTime, err := metric.NewAverager(
		"chain_execute_time",
		"time spent executing a single action",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &processorMetrics{
		actionsExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "actions_executed",
			Help:      "number of actions whose changes were committed",
		}),
		actionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "actions_failed",
			Help:      "number of actions rolled back",
		}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_changes",
			Help:      "number of keys changed by committed actions",
		}),
		stateOperations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_operations",
			Help:      "number of state operations performed by committed actions",
		}),
		executeTime: executeTime,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.actionsExecuted),
		r.Register(m.actionsFailed),
		r.Register(m.stateChanges),
		r.Register(m.stateOperations),
	)
	return m, errs.Err
}
