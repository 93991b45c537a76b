package leconv

import "encoding/binary"

// Uint16 decodes the first 2 bytes of b as a little-endian 16-bit value.
func Uint16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// Uint32 decodes the first 4 bytes of b as a little-endian 32-bit value.
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// Uint64 decodes the first 8 bytes of b as a little-endian 64-bit value.
func Uint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// Uint128 decodes the first 16 bytes of b as a little-endian 128-bit value,
// returned as its low and high 64-bit halves.
func Uint128(b []byte) (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b), binary.LittleEndian.Uint64(b[8:])
}

// PutUint16 encodes v into the first 2 bytes of b, little-endian.
func PutUint16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// PutUint32 encodes v into the first 4 bytes of b, little-endian.
func PutUint32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutUint64 encodes v into the first 8 bytes of b, little-endian.
func PutUint64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// PutUint128 encodes the 128-bit value (lo, hi) into the first 16 bytes of
// b, little-endian (low half first).
func PutUint128(b []byte, lo, hi uint64) {
	binary.LittleEndian.PutUint64(b, lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
}

// To2 copies the first 2 bytes of b into a fixed-size array.
func To2(b []byte) [2]byte {
	return [2]byte(b)
}

// To4 copies the first 4 bytes of b into a fixed-size array.
func To4(b []byte) [4]byte {
	return [4]byte(b)
}

// To8 copies the first 8 bytes of b into a fixed-size array.
func To8(b []byte) [8]byte {
	return [8]byte(b)
}

// To16 copies the first 16 bytes of b into a fixed-size array.
func To16(b []byte) [16]byte {
	return [16]byte(b)
}
