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

// Package wots implements the Mochimo-flavored WOTS+ one-time signature
// scheme over SHA-256 with w=16, n=32, len=67.
package wots

// Fixed Winternitz parameters for the Mochimo WOTS+ instantiation. These are
// not configurable: the scheme is defined for exactly this parameter set.
const (
	W    = 16 // Winternitz parameter
	LogW = 4  // log2(W)
	N    = 32 // hash output size in bytes (PARAMSN)

	Len1 = 64 // number of message base-w digits (WOTSLEN1)
	Len2 = 3  // number of checksum base-w digits (WOTSLEN2)
	Len  = Len1 + Len2 // total chains (WOTSLEN = 67)

	SigBytes = Len * N // WOTSSIGBYTES = 2144

	// XMSS-style hash-function domain separation bytes, placed as the last
	// byte of a 31-zero-byte left pad.
	PaddingF   = 0 // XMSS_HASH_PADDING_F
	PaddingPRF = 3 // XMSS_HASH_PADDING_PRF
)
