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

// Package encode implements the base58-with-CRC16 encoding of a 20-byte
// Mochimo v3 address tag.
package encode

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/sigurn/crc16"

	cerrors "github.com/mcm-wots/wots-go/src/errors"
)

const (
	tagLen     = 20
	payloadLen = tagLen + 2 // tag || crc_lo || crc_hi
)

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// checksum computes the CRC-16/XMODEM checksum of a 20-byte tag.
func checksum(tag []byte) uint16 {
	return crc16.Checksum(tag, crcTable)
}

// AddrTagToBase58 encodes a 20-byte tag as base58(tag || crc_lo || crc_hi),
// where crc is the little-endian CRC-16/XMODEM checksum of the tag.
func AddrTagToBase58(tag []byte) (string, error) {
	if len(tag) != tagLen {
		return "", cerrors.NewInvalidLength("tag", tagLen, len(tag))
	}

	payload := make([]byte, payloadLen)
	copy(payload, tag)

	crc := checksum(tag)
	payload[tagLen] = byte(crc & 0xFF)
	payload[tagLen+1] = byte(crc >> 8)

	return base58.Encode(payload), nil
}

// Base58ToAddrTag decodes a base58 tag string, validating its length and
// checksum, and returns the first 20 bytes (the tag itself).
func Base58ToAddrTag(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) != payloadLen {
		return nil, cerrors.NewInvalidBase58("decoded length must be 22 bytes")
	}

	want := uint16(decoded[tagLen]) | uint16(decoded[tagLen+1])<<8
	got := checksum(decoded[:tagLen])
	if want != got {
		return nil, cerrors.NewChecksumMismatch(want, got)
	}

	tag := make([]byte, tagLen)
	copy(tag, decoded[:tagLen])
	return tag, nil
}

// ValidateBase58Tag reports whether s decodes to a well-formed,
// checksum-correct base58 tag.
func ValidateBase58Tag(s string) bool {
	_, err := Base58ToAddrTag(s)
	return err == nil
}
