// Package endian provides the byte order used by the external term format.
//
// Every multi-byte length, count and integer field of the format is
// big-endian, independent of the host. The EndianEngine interface combines
// binary.ByteOrder and binary.AppendByteOrder so the encoder can append
// fields directly to its output buffer and the decoder can read them in
// place:
//
//	engine := endian.Wire()
//	buf = engine.AppendUint32(buf, uint32(len(payload)))
//	n := engine.Uint32(buf[1:5])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the engine for the term format's fields (big-endian).
func Wire() EndianEngine {
	return binary.BigEndian
}
