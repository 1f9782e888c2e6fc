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

package wots

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/mcm-wots/wots-go/src/errors"
)

// Address is the 32-byte WOTS+ hash-address structure. Only the chain
// index (byte 20), the hash index (byte 24) and the key/mask selector
// (byte 28) are ever set by this layer; the remaining fields are left at
// zero because Mochimo's single-tree WOTS+ leaf never uses them.
type Address [32]byte

// SetChainAddress sets the chain index field at byte offset 20.
func (a *Address) SetChainAddress(v uint32) {
	binary.LittleEndian.PutUint32(a[20:24], v)
}

// SetHashAddress sets the hash index field at byte offset 24.
func (a *Address) SetHashAddress(v uint32) {
	binary.LittleEndian.PutUint32(a[24:28], v)
}

// SetKeyAndMask sets the key/mask selector field at byte offset 28.
func (a *Address) SetKeyAndMask(v uint32) {
	binary.LittleEndian.PutUint32(a[28:32], v)
}

// ToBytes produces the canonical serialization of addr used inside PRF
// inputs: each of the eight 4-byte chunks is byte-reversed before
// emission. This is not a plain whole-buffer endian flip.
func (a Address) ToBytes() [32]byte {
	var out [32]byte
	for i := 0; i < 8; i++ {
		out[i*4+0] = a[i*4+3]
		out[i*4+1] = a[i*4+2]
		out[i*4+2] = a[i*4+1]
		out[i*4+3] = a[i*4+0]
	}
	return out
}

// pad32 returns a 32-byte buffer of zeroes with b as its final byte,
// matching the XMSS hash-function domain-separation convention.
func pad32(b byte) [32]byte {
	var out [32]byte
	out[31] = b
	return out
}

// PRF computes SHA-256(pad32(PaddingPRF) || key || input) and writes the
// 32-byte digest into out[outOff:outOff+32].
func PRF(out []byte, outOff int, input, key [N]byte) {
	if len(out) < outOff+N {
		panic(errors.NewInvalidLength("prf output", outOff+N, len(out)))
	}
	pad := pad32(PaddingPRF)
	h := sha256.New()
	h.Write(pad[:])
	h.Write(key[:])
	h.Write(input[:])
	digest := h.Sum(nil)
	copy(out[outOff:outOff+N], digest)
}

// ThashF computes one F-chain step: derives a per-position key and mask
// from pubSeed and addr, XORs the mask into the input, and hashes the
// result under the PaddingF domain separator.
func ThashF(out []byte, outOff int, in []byte, inOff int, pubSeed [N]byte, addr *Address) {
	addr.SetKeyAndMask(0)
	a0 := addr.ToBytes()
	var key [N]byte
	PRF(key[:], 0, a0, pubSeed)

	addr.SetKeyAndMask(1)
	a1 := addr.ToBytes()
	var mask [N]byte
	PRF(mask[:], 0, a1, pubSeed)

	var xored [N]byte
	for i := 0; i < N; i++ {
		xored[i] = in[inOff+i] ^ mask[i]
	}

	pad := pad32(PaddingF)
	h := sha256.New()
	h.Write(pad[:])
	h.Write(key[:])
	h.Write(xored[:])
	digest := h.Sum(nil)
	copy(out[outOff:outOff+N], digest)
}
