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

package wallet

import "crypto/sha256"

// Components holds the three 32-byte seeds a wallet derives from a single
// secret: the WOTS+ private seed, the public seed, and the address seed
// (rnd2).
type Components struct {
	PrivateSeed [32]byte
	PublicSeed  [32]byte
	AddrSeed    [32]byte
}

// ComponentGenerator derives Components from a 32-byte secret. It is a
// function value, not an interface, so alternate derivations and
// deterministic test fixtures plug in without subclassing.
type ComponentGenerator func(secret []byte) Components

// DefaultComponentGenerator is the Mochimo reference derivation: the secret
// bytes are treated as an ASCII octet sequence (not hex), concatenated with
// a literal suffix, then hashed with SHA-256. This is bit-identical to the
// reference tooling and must not be routed through a UTF-8 string
// conversion, which would mangle non-ASCII secret bytes.
func DefaultComponentGenerator(secret []byte) Components {
	seedASCII := make([]byte, len(secret))
	copy(seedASCII, secret)

	derive := func(suffix string) [32]byte {
		buf := make([]byte, 0, len(seedASCII)+len(suffix))
		buf = append(buf, seedASCII...)
		buf = append(buf, suffix...)
		return sha256.Sum256(buf)
	}

	return Components{
		PrivateSeed: derive("seed"),
		PublicSeed:  derive("publ"),
		AddrSeed:    derive("addr"),
	}
}
