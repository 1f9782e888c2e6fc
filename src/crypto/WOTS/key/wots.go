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
	"github.com/mcm-wots/wots-go/src/errors"
)

// ExpandSeed derives the 2144-byte private key expansion from a 32-byte
// seed: out[32i:32i+32] = PRF(ctr_i, seed) for i in [0, Len), where ctr_i is
// the 32-byte big-endian encoding of i.
func ExpandSeed(seed [N]byte) []byte {
	out := make([]byte, SigBytes)
	for i := 0; i < Len; i++ {
		var ctr [N]byte
		ctr[N-1] = byte(i) // i < 256 for all i in [0, 67)
		PRF(out, N*i, ctr, seed)
	}
	return out
}

// BaseW decomposes msg into length base-16 digits, high nibble first,
// writing them into dst[offset:offset+length]. It consumes ceil(length/2)
// bytes from the front of msg.
func BaseW(msg []byte, dst []byte, offset, length int) {
	in := 0
	for out := 0; out < length; out++ {
		b := msg[in/2]
		if in%2 == 0 {
			dst[offset+out] = b >> 4
		} else {
			dst[offset+out] = b & 0x0F
		}
		in++
	}
}

// ChainLengths computes the full 67-digit length vector for a 32-byte
// message digest: 64 message digits followed by a 3-digit checksum tail.
func ChainLengths(msgDigest [N]byte) [Len]byte {
	var lengths [Len]byte
	BaseW(msgDigest[:], lengths[:], 0, Len1)

	var csum uint32
	for i := 0; i < Len1; i++ {
		csum += uint32(W-1) - uint32(lengths[i])
	}
	csum <<= 4

	var csumBytes [2]byte
	csumBytes[0] = byte(csum >> 8)
	csumBytes[1] = byte(csum)
	BaseW(csumBytes[:], lengths[:], Len1, Len2)

	return lengths
}

// GenChain walks the F-chain starting from in[inOff:inOff+N], advancing
// from position start for steps applications (never past position
// W-1=15), and writes the result into out[outOff:outOff+N].
func GenChain(out []byte, outOff int, in []byte, inOff int, start, steps int, pubSeed [N]byte, addr *Address) {
	copy(out[outOff:outOff+N], in[inOff:inOff+N])
	end := start + steps
	if end > W {
		end = W
	}
	for i := start; i < end; i++ {
		addr.SetHashAddress(uint32(i))
		ThashF(out, outOff, out, outOff, pubSeed, addr)
	}
}

// PkGen derives the 2144-byte WOTS+ public key from a private seed, a
// public seed, and a 32-byte address seed. addrSeed is used verbatim as the
// starting Address value; only the chain/hash/key-mask fields are
// overwritten as the chains are walked. Because Address is a value type,
// mutations inside this function never leak back into the caller's
// addrSeed bytes.
func PkGen(privateSeed, pubSeed, addrSeed [N]byte) []byte {
	pk := ExpandSeed(privateSeed)
	addr := Address(addrSeed)
	for i := 0; i < Len; i++ {
		addr.SetChainAddress(uint32(i))
		GenChain(pk, N*i, pk, N*i, 0, W-1, pubSeed, &addr)
	}
	return pk
}

// Sign produces a 2144-byte WOTS+ signature of a 32-byte message digest
// under a private seed, public seed and address seed.
func Sign(msgDigest, privateSeed, pubSeed, addrSeed [N]byte) []byte {
	lengths := ChainLengths(msgDigest)
	sig := ExpandSeed(privateSeed)
	addr := Address(addrSeed)
	for i := 0; i < Len; i++ {
		addr.SetChainAddress(uint32(i))
		GenChain(sig, N*i, sig, N*i, 0, int(lengths[i]), pubSeed, &addr)
	}
	return sig
}

// PkFromSig recovers the candidate public key from a signature and the
// message it signs. addrSeed is passed by value, so the Address built from
// it here is an independent copy of whatever the caller holds.
func PkFromSig(sig []byte, msgDigest, pubSeed, addrSeed [N]byte) ([]byte, error) {
	if len(sig) != SigBytes {
		return nil, errors.NewInvalidLength("signature", SigBytes, len(sig))
	}
	lengths := ChainLengths(msgDigest)
	pk := make([]byte, SigBytes)
	addr := Address(addrSeed)
	for i := 0; i < Len; i++ {
		addr.SetChainAddress(uint32(i))
		start := int(lengths[i])
		GenChain(pk, N*i, sig, N*i, start, W-1-start, pubSeed, &addr)
	}
	return pk, nil
}

// Equal reports whether two public keys (or any two equal-role byte
// buffers) are identical, after first checking their lengths match. This is
// a length-checked comparison, not a side-channel-hardened one; spec.md
// explicitly scopes out constant-time guarantees beyond this.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
