// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ Rules = (*StaticRules)(nil)

type StaticRules struct {
	LockedWithdrawals bool
	FeeCap            uint16
}

func DefaultRules() *StaticRules {
	return &StaticRules{
		LockedWithdrawals: true,
		FeeCap:            MaxFeeBps,
	}
}

func (r *StaticRules) AllowLockedWithdrawals() bool {
	return r.LockedWithdrawals
}

func (r *StaticRules) MaxFeeBps() uint16 {
	return min(r.FeeCap, MaxFeeBps)
}

// WithDefaults returns [r], or [DefaultRules] when [r] is nil.
func WithDefaults(r Rules) Rules {
	if r == nil {
		return DefaultRules()
	}
	return r
}
