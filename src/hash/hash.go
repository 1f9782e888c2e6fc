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

// Package hash adapts the three algorithms the WOTS+/Mochimo core is
// allowed to touch: SHA-256 (one-shot and incremental, for the signature
// scheme itself), SHA3-512 and RIPEMD160 (one-shot, for the 20-byte
// implicit address tag). No other primitive belongs here.
package hash

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Mochimo addr-hash requires RIPEMD160 specifically
	"golang.org/x/crypto/sha3"
)

// Size256 is the digest size of SHA-256 in bytes.
const Size256 = 32

// SizeSHA3512 is the digest size of SHA3-512 in bytes.
const SizeSHA3512 = 64

// SizeRIPEMD160 is the digest size of RIPEMD160 in bytes.
const SizeRIPEMD160 = 20

// SHA256 returns the one-shot SHA-256 digest of data.
func SHA256(data []byte) [Size256]byte {
	return sha256.Sum256(data)
}

// IncrementalSHA256 wraps crypto/sha256's running hash so callers can feed
// it arbitrary chunks and still reproduce the one-shot digest. Digest resets
// the hasher to the empty state, matching the behavior of a freshly
// constructed hasher, so a second call to Digest without an intervening
// Update returns the empty-input hash.
type IncrementalSHA256 struct {
	h interface {
		Write(p []byte) (int, error)
		Sum(b []byte) []byte
		Reset()
	}
}

// NewSHA256 constructs an incremental SHA-256 hasher.
func NewSHA256() *IncrementalSHA256 {
	return &IncrementalSHA256{h: sha256.New()}
}

// Update feeds more data into the running hash.
func (s *IncrementalSHA256) Update(p []byte) {
	_, _ = s.h.Write(p)
}

// Digest returns the 32-byte digest of everything written so far and resets
// the hasher.
func (s *IncrementalSHA256) Digest() [Size256]byte {
	var out [Size256]byte
	copy(out[:], s.h.Sum(nil))
	s.h.Reset()
	return out
}

// SHA3512 returns the one-shot SHA3-512 digest of data.
func SHA3512(data []byte) [SizeSHA3512]byte {
	return sha3.Sum512(data)
}

// RIPEMD160 returns the one-shot RIPEMD160 digest of data.
func RIPEMD160(data []byte) [SizeRIPEMD160]byte {
	h := ripemd160.New()
	_, _ = h.Write(data)
	var out [SizeRIPEMD160]byte
	copy(out[:], h.Sum(nil))
	return out
}
