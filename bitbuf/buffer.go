// Package bitbuf implements a growable buffer addressed by bits.
//
// Fields are packed most significant bit first: a field of length L written at
// bit p has its highest bit at p and its lowest bit at p+L-1, regardless of host byte order.
//
// BitBuffer is not safe for concurrent mutation, readers may share it while nobody writes.
package bitbuf

import (
	"github.com/valyala/bytebufferpool"
)

type BitBuffer struct {
	store  *bytebufferpool.ByteBuffer
	cursor uint
}

// New creates buffer with zeroed storage for at least sz bits, write cursor is at 0.
// Panics with ErrCapacityExceeded when sz bits cannot be addressed.
func New(sz uint) *BitBuffer {
	b := &BitBuffer{}
	if sz > 0 {
		if err := b.ensureCapacity(sz); err != nil {
			panic(err)
		}
	}
	return b
}

// FromBytes copies data into a new buffer, write cursor is placed after the last byte.
func FromBytes(data []byte) *BitBuffer {
	b := &BitBuffer{}
	s := b.storage()
	s.B = append(s.B, data...)
	b.cursor = uint(len(data)) * 8
	return b
}

// FromBits copies data into a new buffer with write cursor at sz,
// all bits starting from sz are cleared to keep appends consistent.
func FromBits(data []byte, sz uint) (*BitBuffer, error) {
	if capacity := uint(len(data)) * 8; sz > capacity {
		return nil, errOutOfRange(0, sz, capacity)
	}

	b := FromBytes(data)
	b.cursor = sz

	raw := b.store.B
	idx := ByteIndex(sz)
	if off := BitOffsetInByte(sz); off > 0 {
		raw[idx] &= 0xFF << (8 - off)
		idx++
	}
	for i := idx; i < uint(len(raw)); i++ {
		raw[i] = 0
	}

	return b, nil
}

// SizeBits returns position of the write cursor.
func (b *BitBuffer) SizeBits() uint {
	return b.cursor
}

// Bytes returns copy of the bytes covered by the write cursor.
func (b *BitBuffer) Bytes() []byte {
	return append([]byte{}, b.RawBytes()[:BytesForBits(b.cursor)]...)
}

func (b *BitBuffer) Copy() *BitBuffer {
	cp := FromBytes(b.RawBytes())
	cp.cursor = b.cursor
	return cp
}
