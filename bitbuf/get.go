package bitbuf

// Get reads sz bits starting from bit start.
// Bits inside capacity which were never written are read as zeroes.
func (b *BitBuffer) Get(start, sz uint) (uint64, error) {
	if sz == 0 || sz > MaxFieldLength {
		return 0, errInvalidLength(sz, MaxFieldLength)
	}

	capacity := b.CapacityBits()
	if start > capacity || sz > capacity-start {
		return 0, errOutOfRange(start, sz, capacity)
	}

	data := b.store.B
	var value uint64
	left := sz
	for pos := start; ; {
		idx := ByteIndex(pos)
		avail := BitsRemainingInByte(pos)

		if left >= avail {
			left -= avail
			value |= ExtractBits(uint64(data[idx]), 0, avail) << left
			if left == 0 {
				break
			}
			pos += avail
			continue
		}

		value |= ExtractBits(uint64(data[idx]), avail-left, left)
		break
	}

	return value, nil
}

// GetAt reads sz bits from *cursor and moves it forward, cursor stays on failure.
func (b *BitBuffer) GetAt(cursor *uint, sz uint) (uint64, error) {
	value, err := b.Get(*cursor, sz)
	if err != nil {
		return 0, err
	}
	*cursor += sz
	return value, nil
}

func (b *BitBuffer) GetBool(pos uint) (bool, error) {
	v, err := b.Get(pos, 1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

func (b *BitBuffer) MustGet(start, sz uint) uint64 {
	v, err := b.Get(start, sz)
	if err != nil {
		panic(err)
	}
	return v
}

func (b *BitBuffer) MustGetAt(cursor *uint, sz uint) uint64 {
	v, err := b.GetAt(cursor, sz)
	if err != nil {
		panic(err)
	}
	return v
}

// GetValue is Get limited by the width of result type.
func GetValue[T Unsigned](b *BitBuffer, start, sz uint) (T, error) {
	if w := widthOf[T](); sz > w {
		return 0, errInvalidLength(sz, w)
	}
	v, err := b.Get(start, sz)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}
