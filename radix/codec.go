package radix

import (
	"encoding/binary"
	"unsafe"
)

// KeyCodec converts a key into its canonical byte sequence.
//
// Encoding must be deterministic and injective: equal keys produce equal
// bytes, distinct keys produce distinct bytes. The trie never decodes bytes
// back into a key.
type KeyCodec[K any] interface {
	EncodeKey(key K) []byte
}

// CodecFunc adapts an ordinary function to the KeyCodec interface.
type CodecFunc[K any] func(key K) []byte

func (f CodecFunc[K]) EncodeKey(key K) []byte {
	return f(key)
}

// StringCodec encodes string keys as their raw bytes.
func StringCodec[K ~string]() KeyCodec[K] {
	return CodecFunc[K](func(key K) []byte {
		return []byte(key)
	})
}

// UnsignedCodec encodes unsigned integers big-endian so that byte order
// matches numeric order.
func UnsignedCodec[K ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr]() KeyCodec[K] {
	var (
		zero  K
		width = int(unsafe.Sizeof(zero))
	)

	return CodecFunc[K](func(key K) []byte {
		return putBigEndian(uint64(key), width)
	})
}

// SignedCodec encodes signed integers big-endian with the sign bit flipped,
// so that negative numbers sort before positive ones.
func SignedCodec[K ~int8 | ~int16 | ~int32 | ~int64 | ~int]() KeyCodec[K] {
	var (
		zero    K
		width   = int(unsafe.Sizeof(zero))
		signBit = uint64(1) << (width*8 - 1)
	)

	return CodecFunc[K](func(key K) []byte {
		return putBigEndian(uint64(int64(key))^signBit, width)
	})
}

func putBigEndian(val uint64, width int) []byte {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], val)

	return buf[8-width:]
}
