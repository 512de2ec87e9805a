// Package frame seals packed bit buffers into transferable octet strings:
// header with payload size in bits, payload, CRC-16/XMODEM and optional ed25519 signature.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/sigurn/crc16"
	"github.com/xssnick/bitbuf/bitbuf"
)

const Version = 1

const (
	versionBits  = 4
	flagBits     = 1
	reservedBits = 3
	sizeBits     = 32

	headerLen   = (versionBits + flagBits + reservedBits + sizeBits) / 8
	checksumLen = 2
)

var ErrCorrupted = errors.New("frame is corrupted")
var ErrUnsupportedVersion = errors.New("unsupported frame version")
var ErrChecksumMismatch = errors.New("frame checksum mismatch")
var ErrBadSignature = errors.New("frame signature is invalid")
var ErrNotSigned = errors.New("frame is not signed")
var ErrBadKey = errors.New("invalid key size")
var ErrPayloadTooLarge = errors.New("payload is too large for frame")

// Logger is called with diagnostic details of rejected frames, silent by default.
var Logger = func(v ...any) {}

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

type header struct {
	version  uint64
	signed   bool
	reserved uint64
	bits     uint64
}

// Seal packs buffer content into a frame, signs it when key is not nil.
func Seal(buf *bitbuf.BitBuffer, key ed25519.PrivateKey) ([]byte, error) {
	if key != nil && len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: private key should be %d bytes, got %d", ErrBadKey, ed25519.PrivateKeySize, len(key))
	}

	sz := buf.SizeBits()
	if sz > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bits", ErrPayloadTooLarge, sz)
	}

	h, err := packHeader(header{
		version: Version,
		signed:  key != nil,
		bits:    uint64(sz),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pack header: %w", err)
	}

	payload := buf.Bytes()

	ln := len(h) + len(payload) + checksumLen
	if key != nil {
		ln += ed25519.SignatureSize
	}

	data := make([]byte, 0, ln)
	data = append(data, h...)
	data = append(data, payload...)
	data = binary.BigEndian.AppendUint16(data, crc16.Checksum(data, crcTable))

	if key != nil {
		data = append(data, ed25519.Sign(key, data)...)
	}

	return data, nil
}

// Open validates frame and unpacks its payload into a new buffer.
// When pub is not nil the frame must carry a valid signature of this key.
func Open(data []byte, pub ed25519.PublicKey) (*bitbuf.BitBuffer, error) {
	if pub != nil && len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: public key should be %d bytes, got %d", ErrBadKey, ed25519.PublicKeySize, len(pub))
	}

	if len(data) < headerLen+checksumLen {
		return nil, fmt.Errorf("%w: too short, %d bytes", ErrCorrupted, len(data))
	}

	h, err := parseHeader(data[:headerLen])
	if err != nil {
		return nil, err
	}

	if h.version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}

	if h.reserved != 0 {
		return nil, fmt.Errorf("%w: reserved bits are set", ErrCorrupted)
	}

	payloadLen := int(bitbuf.BytesForBits(uint(h.bits)))
	signedLen := headerLen + payloadLen + checksumLen

	want := signedLen
	if h.signed {
		want += ed25519.SignatureSize
	}
	if len(data) != want {
		Logger("frame length mismatch, header says", h.bits, "bits, expected", want, "bytes, got", len(data))
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorrupted, want, len(data))
	}

	body := data[:signedLen-checksumLen]
	if sum := binary.BigEndian.Uint16(data[signedLen-checksumLen:]); crc16.Checksum(body, crcTable) != sum {
		Logger("frame checksum mismatch, received", sum)
		return nil, ErrChecksumMismatch
	}

	if pub != nil {
		if !h.signed {
			return nil, ErrNotSigned
		}

		if !ed25519.Verify(pub, data[:signedLen], data[signedLen:]) {
			Logger("frame signature verification failed")
			return nil, ErrBadSignature
		}
	}

	buf, err := bitbuf.FromBits(data[headerLen:headerLen+payloadLen], uint(h.bits))
	if err != nil {
		return nil, fmt.Errorf("failed to load payload: %w", err)
	}

	return buf, nil
}

// IsSigned reports whether frame header declares a signature.
func IsSigned(data []byte) (bool, error) {
	if len(data) < headerLen {
		return false, fmt.Errorf("%w: too short, %d bytes", ErrCorrupted, len(data))
	}

	h, err := parseHeader(data[:headerLen])
	if err != nil {
		return false, err
	}
	return h.signed, nil
}

func packHeader(h header) ([]byte, error) {
	b := bitbuf.New(headerLen * 8)
	defer b.Release()

	var signed uint64
	if h.signed {
		signed = 1
	}

	if _, err := b.Append(h.version, versionBits); err != nil {
		return nil, err
	}
	if _, err := b.Append(signed, flagBits); err != nil {
		return nil, err
	}
	if _, err := b.Append(h.reserved, reservedBits); err != nil {
		return nil, err
	}
	if _, err := b.Append(h.bits, sizeBits); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func parseHeader(data []byte) (header, error) {
	b := bitbuf.FromBytes(data)
	defer b.Release()

	var h header
	var err error
	var cursor uint

	if h.version, err = b.GetAt(&cursor, versionBits); err != nil {
		return header{}, fmt.Errorf("failed to load version: %w", err)
	}

	signed, err := b.GetAt(&cursor, flagBits)
	if err != nil {
		return header{}, fmt.Errorf("failed to load flags: %w", err)
	}
	h.signed = signed == 1

	if h.reserved, err = b.GetAt(&cursor, reservedBits); err != nil {
		return header{}, fmt.Errorf("failed to load reserved bits: %w", err)
	}

	if h.bits, err = b.GetAt(&cursor, sizeBits); err != nil {
		return header{}, fmt.Errorf("failed to load payload size: %w", err)
	}

	return h, nil
}
