// Package fuzzutil turns a raw byte slice - the kind testing.F hands a
// fuzz function - into a sequence of typed values that can drive a
// property-test step runner. Adapted from
// github.com/fmstephe/location-system's testpkg/fuzzutil, shared here by
// both pkg/freelist and pkg/quadtree's fuzz tests.
package fuzzutil

import "encoding/binary"

// ByteConsumer hands out typed values from a byte slice, shrinking as it
// goes. Once the underlying bytes run out it keeps returning zero values
// rather than panicking or erroring, so a TestRun never needs to guard
// against running off the end of the corpus entry.
type ByteConsumer struct {
	bytes []byte
}

func NewByteConsumer(bytes []byte) *ByteConsumer {
	return &ByteConsumer{
		bytes: bytes,
	}
}

func (c *ByteConsumer) Len() int {
	return len(c.bytes)
}

func (c *ByteConsumer) ConsumeBytes(size int) []byte {
	consumed := make([]byte, size)
	copy(consumed, c.bytes)

	if len(c.bytes) <= size {
		c.bytes = c.bytes[:0]
	} else {
		c.bytes = c.bytes[size:]
	}
	return consumed
}

func (c *ByteConsumer) ConsumeByte() byte {
	return c.ConsumeBytes(1)[0]
}

func (c *ByteConsumer) ConsumeUint16() uint16 {
	return binary.LittleEndian.Uint16(c.ConsumeBytes(2))
}

func (c *ByteConsumer) ConsumeUint32() uint32 {
	return binary.LittleEndian.Uint32(c.ConsumeBytes(4))
}

// ConsumeInt32 returns a value evenly spread across the full int32 range,
// useful for generating quadtree coordinates from fuzz input.
func (c *ByteConsumer) ConsumeInt32() int32 {
	return int32(c.ConsumeUint32())
}

// ConsumeIntn returns a value in [0, n) for n > 0, or 0 for n <= 0.
func (c *ByteConsumer) ConsumeIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(c.ConsumeUint32() % uint32(n))
}
