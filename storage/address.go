// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"

	"github.com/ava-labs/ammvm/codec"
	"github.com/ava-labs/ammvm/consts"
	"github.com/ava-labs/ammvm/utils"
)

var (
	poolDomain = []byte("config")
	lpDomain   = []byte("lp")
)

// AssetAddress is the address of a user-created asset. The same owner cannot
// create two assets with the same name and symbol.
func AssetAddress(name []byte, symbol []byte, owner codec.Address) codec.Address {
	v := make([]byte, 0, len(name)+len(symbol)+codec.AddressLen+2*consts.Uint16Len)
	v = binary.BigEndian.AppendUint16(v, uint16(len(name)))
	v = append(v, name...)
	v = binary.BigEndian.AppendUint16(v, uint16(len(symbol)))
	v = append(v, symbol...)
	v = append(v, owner[:]...)
	return codec.CreateAddress(consts.AssetID, utils.ToID(v))
}

// PoolAddress derives the address of the pool identified by [seed] over
// ([assetX], [assetY]). The order of the assets is significant.
func PoolAddress(seed uint64, assetX codec.Address, assetY codec.Address) codec.Address {
	v := make([]byte, 0, len(poolDomain)+consts.Uint64Len+2*codec.AddressLen)
	v = append(v, poolDomain...)
	v = binary.LittleEndian.AppendUint64(v, seed)
	v = append(v, assetX[:]...)
	v = append(v, assetY[:]...)
	return codec.CreateAddress(consts.PoolID, utils.ToID(v))
}

// LPAssetAddress is the address of the LP asset minted by [pool].
func LPAssetAddress(pool codec.Address) codec.Address {
	v := make([]byte, 0, len(lpDomain)+codec.AddressLen)
	v = append(v, lpDomain...)
	v = append(v, pool[:]...)
	return codec.CreateAddress(consts.LPAssetID, utils.ToID(v))
}

// VaultAddress is the custody account holding [pool]'s reserve of [asset].
func VaultAddress(asset codec.Address, pool codec.Address) codec.Address {
	v := make([]byte, 0, 2*codec.AddressLen)
	v = append(v, asset[:]...)
	v = append(v, pool[:]...)
	return codec.CreateAddress(consts.VaultID, utils.ToID(v))
}

// IsDerived reports whether [addr] belongs to an asset, pool, LP asset or
// vault rather than to a user account.
func IsDerived(addr codec.Address) bool {
	switch addr.TypeID() {
	case consts.AssetID, consts.PoolID, consts.LPAssetID, consts.VaultID:
		return true
	default:
		return false
	}
}
