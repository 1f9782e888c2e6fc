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

// Package address implements the Mochimo wallet-address framing: the
// 2208-byte wallet address, the legacy 12-byte tag, the v3 20-byte tag and
// 40-byte address, the 48-byte amount-bearing form, and the address-hash
// derivation that ties a WOTS+ public key to its tag.
package address

import (
	"encoding/binary"
	"encoding/hex"

	wots "github.com/mcm-wots/wots-go/src/crypto/WOTS/key"
	cerrors "github.com/mcm-wots/wots-go/src/errors"
	"github.com/mcm-wots/wots-go/src/hash"
)

// Byte-length constants for the framing layer (spec.md section 6).
const (
	AddressLen   = 2208 // pk(2144) || pub_seed(32) || rnd2(32)
	LegacyTagLen = 12
	V3TagLen     = 20
	V3AddrLen    = 40
	AmountLen    = 8
	V3AddrAmountLen = V3AddrLen + AmountLen // 48
)

// legacyTagOffset is where the 12-byte legacy tag sits inside the 2208-byte
// wallet address: the last 12 bytes of rnd2.
const legacyTagOffset = AddressLen - LegacyTagLen

// WotsAddress is a full 2208-byte Mochimo v2-style wallet address:
// pk || pub_seed || rnd2.
type WotsAddress [AddressLen]byte

// NewWotsAddress assembles a wallet address from its three components.
func NewWotsAddress(pk []byte, pubSeed, rnd2 [32]byte) (WotsAddress, error) {
	var out WotsAddress
	if len(pk) != wots.SigBytes {
		return out, cerrors.NewInvalidLength("pk", wots.SigBytes, len(pk))
	}
	copy(out[:wots.SigBytes], pk)
	copy(out[wots.SigBytes:wots.SigBytes+32], pubSeed[:])
	copy(out[wots.SigBytes+32:], rnd2[:])
	return out, nil
}

// Split returns the (pk, pub_seed, rnd2) components of a wallet address.
func (w WotsAddress) Split() (pk []byte, pubSeed, rnd2 [32]byte) {
	pk = make([]byte, wots.SigBytes)
	copy(pk, w[:wots.SigBytes])
	copy(pubSeed[:], w[wots.SigBytes:wots.SigBytes+32])
	copy(rnd2[:], w[wots.SigBytes+32:])
	return
}

// PublicKey returns a copy of the 2144-byte public key half of the address.
func (w WotsAddress) PublicKey() []byte {
	pk, _, _ := w.Split()
	return pk
}

// Hex renders the wallet address as a 4416-character lowercase hex string.
func (w WotsAddress) Hex() string {
	return hex.EncodeToString(w[:])
}

// FromHex parses a 4416-character hex string into a WotsAddress.
func FromHex(s string) (WotsAddress, error) {
	var out WotsAddress
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, cerrors.NewInvalidBase58(err.Error())
	}
	if len(b) != AddressLen {
		return out, cerrors.NewInvalidLength("wots address hex", AddressLen, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// TagIsValid reports whether t is a legal legacy tag: 12 bytes, first byte
// not 0x00 and not 0x42.
func TagIsValid(t []byte) bool {
	if len(t) != LegacyTagLen {
		return false
	}
	return t[0] != 0x00 && t[0] != 0x42
}

// TagApply returns a copy of addr with its last 12 bytes overwritten by t.
func TagApply(addr WotsAddress, t []byte) (WotsAddress, error) {
	if !TagIsValid(t) {
		return addr, cerrors.NewInvalidTag("first byte must not be 0x00 or 0x42, and length must be 12")
	}
	out := addr
	copy(out[legacyTagOffset:], t)
	return out, nil
}

// TagExtract returns the last 12 bytes of addr, the legacy tag slot.
func TagExtract(addr WotsAddress) [LegacyTagLen]byte {
	var out [LegacyTagLen]byte
	copy(out[:], addr[legacyTagOffset:])
	return out
}

// AddrHash computes RIPEMD160(SHA3-512(x)), the 20-byte v3 address hash.
func AddrHash(x []byte) [V3TagLen]byte {
	sha3Digest := hash.SHA3512(x)
	return hash.RIPEMD160(sha3Digest[:])
}

// AddrFromWots derives the 40-byte v3 address directly from a 2144-byte
// WOTS+ public key: tag = addr_hash(pk), then the implicit form.
func AddrFromWots(pk []byte) ([V3AddrLen]byte, error) {
	var out [V3AddrLen]byte
	if len(pk) != wots.SigBytes {
		return out, cerrors.NewInvalidLength("pk", wots.SigBytes, len(pk))
	}
	tag := AddrHash(pk)
	return AddrFromImplicit(tag), nil
}

// AddrFromImplicit builds the 40-byte "implicit" address form from a
// 20-byte tag: tag followed by the same tag duplicated into the hash slot.
func AddrFromImplicit(tag [V3TagLen]byte) [V3AddrLen]byte {
	var out [V3AddrLen]byte
	copy(out[:V3TagLen], tag[:])
	copy(out[V3TagLen:], tag[:])
	return out
}

// V3Address is the canonical 40-byte tag || addr_hash pair.
func V3Address(tag, addrHash [V3TagLen]byte) [V3AddrLen]byte {
	var out [V3AddrLen]byte
	copy(out[:V3TagLen], tag[:])
	copy(out[V3TagLen:], addrHash[:])
	return out
}

// WotsAddressFromBytes accepts three input lengths, per spec.md section
// 4.5: 2144 (derive tag+hash from a raw pk, amount=0), 40 (address only,
// amount=0) and 48 (address with a trailing little-endian amount). Any
// other length yields a zeroed 48-byte result.
func WotsAddressFromBytes(b []byte) ([V3AddrAmountLen]byte, error) {
	var out [V3AddrAmountLen]byte
	switch len(b) {
	case wots.SigBytes:
		addr, err := AddrFromWots(b)
		if err != nil {
			return out, err
		}
		copy(out[:V3AddrLen], addr[:])
	case V3AddrLen:
		copy(out[:V3AddrLen], b)
	case V3AddrAmountLen:
		copy(out[:], b)
	default:
		// zeroed result, per spec.md: "any other length constructs a
		// zeroed address."
	}
	return out, nil
}

// AmountOf reads the little-endian uint64 amount from a 48-byte
// amount-bearing v3 address.
func AmountOf(addrWithAmount [V3AddrAmountLen]byte) uint64 {
	return binary.LittleEndian.Uint64(addrWithAmount[V3AddrLen:])
}

// WithAmount returns the 48-byte form of a 40-byte v3 address with amount
// appended as a little-endian uint64.
func WithAmount(addr [V3AddrLen]byte, amount uint64) [V3AddrAmountLen]byte {
	var out [V3AddrAmountLen]byte
	copy(out[:V3AddrLen], addr[:])
	binary.LittleEndian.PutUint64(out[V3AddrLen:], amount)
	return out
}
