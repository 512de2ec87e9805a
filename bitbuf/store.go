package bitbuf

import (
	"math"

	"github.com/valyala/bytebufferpool"
)

var storagePool bytebufferpool.Pool

// maxStoreBytes bounds the backing store so that its size in bits still fits into uint.
const maxStoreBytes = uint(math.MaxInt) / 8

func (b *BitBuffer) storage() *bytebufferpool.ByteBuffer {
	if b.store == nil {
		b.store = storagePool.Get()
		b.store.Reset()
	}
	return b.store
}

// ensureCapacity grows storage with zero bytes until it holds at least sz bits.
func (b *BitBuffer) ensureCapacity(sz uint) error {
	need := BytesForBits(sz)
	if need > maxStoreBytes {
		return ErrCapacityExceeded
	}

	s := b.storage()
	if have := uint(len(s.B)); need > have {
		// append fresh zeroes, tail of the underlying array can hold data from previous owners
		s.B = append(s.B, make([]byte, need-have)...)
	}
	return nil
}

// Resize sets storage length to exactly sz bytes.
// New bytes are zero, truncation below the write cursor is rejected with ErrBufferTooSmall.
func (b *BitBuffer) Resize(sz uint) error {
	if sz > maxStoreBytes {
		return ErrCapacityExceeded
	}

	if sz*8 < b.cursor {
		return ErrBufferTooSmall
	}

	s := b.storage()
	if have := uint(len(s.B)); sz > have {
		s.B = append(s.B, make([]byte, sz-have)...)
		return nil
	}
	s.B = s.B[:sz]
	return nil
}

// Release gives storage back to the pool, buffer becomes empty and can be reused.
// Any slice got from RawBytes before must not be used after it.
func (b *BitBuffer) Release() {
	if b.store != nil {
		storagePool.Put(b.store)
		b.store = nil
	}
	b.cursor = 0
}

// RawBytes returns backing store, it is valid only until the next growing call.
func (b *BitBuffer) RawBytes() []byte {
	if b.store == nil {
		return nil
	}
	return b.store.B
}

func (b *BitBuffer) CapacityBits() uint {
	if b.store == nil {
		return 0
	}
	return uint(len(b.store.B)) * 8
}
