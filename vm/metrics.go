// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/ammvm/consts"
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

type metrics struct {
	actions    *prometheus.CounterVec
	swapVolume prometheus.Counter
	pools      prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "actions_total",
			Help:      "number of actions executed, by type and result",
		}, []string{"action", "result"}),
		swapVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "swap_volume_in",
			Help:      "sum of input amounts of accepted swaps",
		}),
		pools: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: consts.Name,
			Name:      "pools",
			Help:      "number of initialized pools",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.actions),
		r.Register(m.swapVolume),
		r.Register(m.pools),
	)
	return m, errs.Err
}
