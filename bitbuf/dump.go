package bitbuf

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String renders every backing byte in binary, each byte is terminated with '.
func (b *BitBuffer) String() string {
	var sb strings.Builder
	for _, n := range b.RawBytes() {
		sb.WriteString(fmt.Sprintf("%08b", n))
		sb.WriteByte('\'')
	}
	return sb.String()
}

// Dump renders meaningful bytes as hex prefixed by size in bits.
func (b *BitBuffer) Dump() string {
	return fmt.Sprint(b.cursor) + "[" + strings.ToUpper(hex.EncodeToString(b.Bytes())) + "]"
}

// DumpBits renders exactly SizeBits bits in binary prefixed by size in bits.
func (b *BitBuffer) DumpBits() string {
	var val string
	for _, n := range b.Bytes() {
		val += fmt.Sprintf("%08b", n)
	}
	return fmt.Sprint(b.cursor) + "[" + val[:b.cursor] + "]"
}
