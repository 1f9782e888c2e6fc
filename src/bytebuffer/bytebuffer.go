// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package bytebuffer implements a fixed-capacity byte region with a cursor,
// used both as a general serialization helper and as the carrier for the
// 32-byte WOTS+ hash-address structure.
package bytebuffer

import (
	"encoding/binary"

	cerrors "github.com/mcm-wots/wots-go/src/errors"
)

// Order selects the byte order used by PutInt.
type Order int

const (
	// BigEndian is the default order.
	BigEndian Order = iota
	LittleEndian
)

// ByteBuffer is a fixed-capacity byte region with a cursor and a
// configurable byte order.
type ByteBuffer struct {
	buf   []byte
	pos   int
	order Order
}

// Allocate creates a new ByteBuffer of capacity n, big-endian by default.
func Allocate(n int) *ByteBuffer {
	return &ByteBuffer{buf: make([]byte, n), order: BigEndian}
}

// Wrap creates a new ByteBuffer that copies b as its backing storage.
func Wrap(b []byte) *ByteBuffer {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &ByteBuffer{buf: buf, order: BigEndian}
}

// SetOrder changes the byte order used for PutInt.
func (b *ByteBuffer) SetOrder(o Order) {
	b.order = o
}

// Capacity returns the fixed size of the buffer.
func (b *ByteBuffer) Capacity() int {
	return len(b.buf)
}

// Position returns the current cursor.
func (b *ByteBuffer) Position() int {
	return b.pos
}

// SetPosition moves the cursor to i, failing if i is out of [0, capacity].
func (b *ByteBuffer) SetPosition(i int) error {
	if i < 0 || i > len(b.buf) {
		return cerrors.NewInvalidPosition(i, len(b.buf))
	}
	b.pos = i
	return nil
}

// Rewind sets the cursor back to 0.
func (b *ByteBuffer) Rewind() {
	b.pos = 0
}

// Put writes a single byte at the cursor and advances it.
func (b *ByteBuffer) Put(v byte) error {
	if b.pos+1 > len(b.buf) {
		return cerrors.NewBufferOverflow(b.pos, len(b.buf), 1)
	}
	b.buf[b.pos] = v
	b.pos++
	return nil
}

// PutBytes writes src at the cursor and advances it by len(src).
func (b *ByteBuffer) PutBytes(src []byte) error {
	return b.PutSlice(src, 0, len(src))
}

// PutSlice writes length bytes of src starting at offset, at the cursor.
func (b *ByteBuffer) PutSlice(src []byte, offset, length int) error {
	if b.pos+length > len(b.buf) {
		return cerrors.NewBufferOverflow(b.pos, len(b.buf), length)
	}
	copy(b.buf[b.pos:b.pos+length], src[offset:offset+length])
	b.pos += length
	return nil
}

// PutInt writes a 32-bit integer at the cursor honoring the configured
// byte order, and advances the cursor by 4.
func (b *ByteBuffer) PutInt(v int32) error {
	if b.pos+4 > len(b.buf) {
		return cerrors.NewBufferOverflow(b.pos, len(b.buf), 4)
	}
	if b.order == BigEndian {
		binary.BigEndian.PutUint32(b.buf[b.pos:b.pos+4], uint32(v))
	} else {
		binary.LittleEndian.PutUint32(b.buf[b.pos:b.pos+4], uint32(v))
	}
	b.pos += 4
	return nil
}

// Get reads len(dst) bytes from the cursor into dst and advances it.
func (b *ByteBuffer) Get(dst []byte) error {
	if b.pos+len(dst) > len(b.buf) {
		return cerrors.NewBufferUnderflow(b.pos, len(b.buf), len(dst))
	}
	copy(dst, b.buf[b.pos:b.pos+len(dst)])
	b.pos += len(dst)
	return nil
}

// GetOne reads a single byte from the cursor and advances it.
func (b *ByteBuffer) GetOne() (byte, error) {
	if b.pos+1 > len(b.buf) {
		return 0, cerrors.NewBufferUnderflow(b.pos, len(b.buf), 1)
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// Array returns a copy of the full backing storage, ignoring the cursor.
func (b *ByteBuffer) Array() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
