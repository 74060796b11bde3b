// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace       = "pebble"
	metricsInterval = 10 * time.Second
)

// metrics tracks the ledger's own I/O (point reads, prefix scans and
// commit batches) next to a sample of pebble's compaction state.
type metrics struct {
	readLatency   metric.Averager
	scanLatency   metric.Averager
	commitLatency metric.Averager
	scannedKeys   prometheus.Counter
	commits       prometheus.Counter
	commitBytes   prometheus.Counter

	delayStart time.Time
	writeStall metric.Averager

	compactions       *prometheus.CounterVec
	activeCompactions prometheus.Gauge
	tombstones        prometheus.Gauge
	obsoleteBytes     prometheus.Gauge
	diskUsage         prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		scannedKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scanned_keys",
			Help:      "number of keys visited by prefix scans",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commits",
			Help:      "number of batches committed",
		}),
		commitBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commit_bytes",
			Help:      "bytes written by committed batches",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions started by input level",
		}, []string{"level"}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_compactions",
			Help:      "number of running compactions",
		}),
		tombstones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tombstones",
			Help:      "approximate count of tombstones left by removed balances and emptied vaults",
		}),
		obsoleteBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "obsolete_bytes",
			Help:      "bytes held by tables and WAL files no longer referenced",
		}),
		diskUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "disk_usage_bytes",
			Help:      "bytes used on disk by the ledger",
		}),
	}

	var err error
	for _, a := range []struct {
		dst  *metric.Averager
		name string
		help string
	}{
		{&m.readLatency, "read_latency", "time spent reading a key"},
		{&m.scanLatency, "scan_latency", "time spent scanning a key prefix"},
		{&m.commitLatency, "commit_latency", "time spent committing a batch"},
		{&m.writeStall, "write_stall", "time spent waiting for disk write"},
	} {
		if *a.dst, err = metric.NewAverager(namespace+"_"+a.name, a.help, r); err != nil {
			return nil, err
		}
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.scannedKeys),
		r.Register(m.commits),
		r.Register(m.commitBytes),
		r.Register(m.compactions),
		r.Register(m.activeCompactions),
		r.Register(m.tombstones),
		r.Register(m.obsoleteBytes),
		r.Register(m.diskUsage),
	)
	return m, errs.Err
}

func (m *metrics) observeRead(start time.Time) {
	m.readLatency.Observe(float64(time.Since(start)))
}

func (m *metrics) observeScan(start time.Time, keys int) {
	m.scanLatency.Observe(float64(time.Since(start)))
	m.scannedKeys.Add(float64(keys))
}

func (m *metrics) observeCommit(start time.Time, size int) {
	m.commitLatency.Observe(float64(time.Since(start)))
	m.commits.Inc()
	m.commitBytes.Add(float64(size))
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	db.metrics.activeCompactions.Inc()
	level := "other"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onCompactionEnd(pebble.CompactionInfo) {
	db.metrics.activeCompactions.Dec()
}

func (db *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	db.metrics.delayStart = time.Now()
}

func (db *Database) onWriteStallEnd() {
	db.metrics.writeStall.Observe(float64(time.Since(db.metrics.delayStart)))
}

// sample copies pebble's internal counters into the gauges.
func (db *Database) sample() {
	pm := db.db.Metrics()
	db.metrics.tombstones.Set(float64(pm.Keys.TombstoneCount))
	db.metrics.obsoleteBytes.Set(float64(pm.Table.ObsoleteSize + pm.WAL.ObsoletePhysicalSize))
	db.metrics.diskUsage.Set(float64(pm.DiskSpaceUsage()))
}

// collectMetrics samples until the database is closed.
func (db *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer func() {
		t.Stop()
		close(db.closed)
	}()

	for {
		select {
		case <-t.C:
			db.sample()
		case <-db.closing:
			return
		}
	}
}
