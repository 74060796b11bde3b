// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/ammvm/pebble"
	"github.com/ava-labs/ammvm/utils"
)

// New opens the ledger database under [dataDir]. Pebble metrics are
// registered with [reg] under the state namespace.
func New(cfg pebble.Config, dataDir string, reg prometheus.Registerer) (*pebble.Database, error) {
	path, err := utils.InitSubDirectory(dataDir, stateNamespace)
	if err != nil {
		return nil, err
	}
	return pebble.New(path, cfg, prometheus.WrapRegistererWithPrefix(stateNamespace+"_", reg))
}

// CountPools returns the number of pools stored in [db].
func CountPools(db *pebble.Database) (int, error) {
	return db.CountPrefix([]byte{poolPrefix})
}
