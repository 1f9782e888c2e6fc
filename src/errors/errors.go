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

// Package errors holds the typed error kinds shared across the bytebuffer,
// WOTS, wallet-address, encode and wallet packages. Verification mismatches are
// never represented here; only precondition violations are.
package errors

import "fmt"

// InvalidLengthError reports a byte slice whose length did not match what
// the caller required.
type InvalidLengthError struct {
	Field    string
	Expected int
	Got      int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length for %s: expected %d, got %d", e.Field, e.Expected, e.Got)
}

// NewInvalidLength constructs an InvalidLengthError.
func NewInvalidLength(field string, expected, got int) error {
	return &InvalidLengthError{Field: field, Expected: expected, Got: got}
}

// InvalidTagError reports a legacy tag that violates the first-byte rule or
// carries the wrong length.
type InvalidTagError struct {
	Reason string
}

func (e *InvalidTagError) Error() string {
	return "invalid tag: " + e.Reason
}

// NewInvalidTag constructs an InvalidTagError.
func NewInvalidTag(reason string) error {
	return &InvalidTagError{Reason: reason}
}

// BufferOverflowError reports a ByteBuffer write past its capacity.
type BufferOverflowError struct {
	Position int
	Capacity int
	Want     int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("buffer overflow: position %d + %d exceeds capacity %d", e.Position, e.Want, e.Capacity)
}

// NewBufferOverflow constructs a BufferOverflowError.
func NewBufferOverflow(position, capacity, want int) error {
	return &BufferOverflowError{Position: position, Capacity: capacity, Want: want}
}

// BufferUnderflowError reports a ByteBuffer read past its capacity.
type BufferUnderflowError struct {
	Position int
	Capacity int
	Want     int
}

func (e *BufferUnderflowError) Error() string {
	return fmt.Sprintf("buffer underflow: position %d + %d exceeds capacity %d", e.Position, e.Want, e.Capacity)
}

// NewBufferUnderflow constructs a BufferUnderflowError.
func NewBufferUnderflow(position, capacity, want int) error {
	return &BufferUnderflowError{Position: position, Capacity: capacity, Want: want}
}

// InvalidPositionError reports an out-of-range ByteBuffer cursor move.
type InvalidPositionError struct {
	Position int
	Capacity int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position %d for capacity %d", e.Position, e.Capacity)
}

// NewInvalidPosition constructs an InvalidPositionError.
func NewInvalidPosition(position, capacity int) error {
	return &InvalidPositionError{Position: position, Capacity: capacity}
}

// InvalidBase58Error reports a malformed base58 string or a decoded payload
// of the wrong length.
type InvalidBase58Error struct {
	Reason string
}

func (e *InvalidBase58Error) Error() string {
	return "invalid base58 input: " + e.Reason
}

// NewInvalidBase58 constructs an InvalidBase58Error.
func NewInvalidBase58(reason string) error {
	return &InvalidBase58Error{Reason: reason}
}

// ChecksumMismatchError reports a base58 tag whose trailing CRC-16 did not
// match the recomputed checksum of its payload. It is distinguishable from
// the generic InvalidBase58Error so callers can tell "malformed" apart from
// "well-formed but tampered."
type ChecksumMismatchError struct {
	Want uint16
	Got  uint16
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: want %04x, got %04x", e.Want, e.Got)
}

// NewChecksumMismatch constructs a ChecksumMismatchError.
func NewChecksumMismatch(want, got uint16) error {
	return &ChecksumMismatchError{Want: want, Got: got}
}

// InvalidOperationCodeError is reserved for the datagram/transaction framing
// collaborator outside this module's scope; it is exposed here so that
// collaborator can report errors in the same family.
type InvalidOperationCodeError struct {
	Code uint16
}

func (e *InvalidOperationCodeError) Error() string {
	return fmt.Sprintf("invalid operation code: %d", e.Code)
}

// NewInvalidOperationCode constructs an InvalidOperationCodeError.
func NewInvalidOperationCode(code uint16) error {
	return &InvalidOperationCodeError{Code: code}
}
