// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/ammvm/consts"
)

// Packer is a wrapper struct for the Packer struct
// from avalanchego/utils/wrappers/packing.go. It adds methods to
// pack/unpack addresses and enforces "required" fields.
type Packer struct {
	p *wrappers.Packer
}

// NewReader returns a Packer instance with the bytes in [src] and
// a [limit] on the number of bytes that may be read.
func NewReader(src []byte, limit int) *Packer {
	return &Packer{p: &wrappers.Packer{Bytes: src, MaxSize: limit}}
}

// NewWriter returns an instance of Packer that writes at most [limit]
// bytes, starting with a buffer of [initial] bytes.
func NewWriter(initial, limit int) *Packer {
	return &Packer{p: &wrappers.Packer{Bytes: make([]byte, 0, initial), MaxSize: limit}}
}

// Bytes returns the bytes written so far.
func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

// Offset returns the current read/write offset.
func (p *Packer) Offset() int {
	return p.p.Offset
}

// Empty reports whether every byte of the reader has been consumed.
func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

func (p *Packer) Err() error {
	return p.p.Err
}

func (p *Packer) PackByte(b byte) {
	p.p.PackByte(b)
}

func (p *Packer) UnpackByte() byte {
	return p.p.UnpackByte()
}

func (p *Packer) PackBool(b bool) {
	p.p.PackBool(b)
}

func (p *Packer) UnpackBool() bool {
	return p.p.UnpackBool()
}

func (p *Packer) PackUint16(v uint16) {
	p.p.PackShort(v)
}

func (p *Packer) UnpackUint16() uint16 {
	return p.p.UnpackShort()
}

func (p *Packer) PackUint64(v uint64) {
	p.p.PackLong(v)
}

// UnpackUint64 reads a uint64. If [required] is set, a zero value is
// recorded as [ErrFieldNotPopulated].
func (p *Packer) UnpackUint64(required bool) uint64 {
	v := p.p.UnpackLong()
	if required && v == 0 {
		p.addErr(ErrFieldNotPopulated)
	}
	return v
}

func (p *Packer) PackInt64(v int64) {
	p.p.PackLong(uint64(v))
}

func (p *Packer) UnpackInt64(required bool) int64 {
	v := p.p.UnpackLong()
	if required && v == 0 {
		p.addErr(ErrFieldNotPopulated)
	}
	return int64(v)
}

func (p *Packer) PackAddress(a Address) {
	p.p.PackFixedBytes(a[:])
}

// UnpackAddress reads an [Address] into [dest]. The empty address is
// never considered populated.
func (p *Packer) UnpackAddress(dest *Address) {
	copy((*dest)[:], p.p.UnpackFixedBytes(AddressLen))
	if *dest == EmptyAddress {
		p.addErr(ErrFieldNotPopulated)
	}
}

// PackBytes writes [b] prefixed by its uint32 length.
func (p *Packer) PackBytes(b []byte) {
	p.p.PackBytes(b)
}

// UnpackBytes reads a length-prefixed byte slice of at most [limit]
// bytes (-1 for no limit).
func (p *Packer) UnpackBytes(limit int, required bool, dest *[]byte) {
	if limit >= 0 && p.p.Offset+consts.IntLen <= len(p.p.Bytes) {
		if l := binary.BigEndian.Uint32(p.p.Bytes[p.p.Offset:]); int(l) > limit {
			p.addErr(ErrTooLarge)
			return
		}
	}
	*dest = p.p.UnpackBytes()
	if required && len(*dest) == 0 {
		p.addErr(ErrFieldNotPopulated)
	}
}

func (p *Packer) addErr(err error) {
	if p.p.Err == nil {
		p.p.Err = err
	}
}
