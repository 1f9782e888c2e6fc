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

// Package wallet is the convenience facade binding the WOTS+ scheme and the
// Mochimo address framing into a single owned object: derive components
// from a secret, generate a key, and sign/verify against the wallet's own
// address.
package wallet

import (
	"encoding/hex"

	wots "github.com/mcm-wots/wots-go/src/crypto/WOTS/key"
	"github.com/mcm-wots/wots-go/src/core/wallet/address"
	cerrors "github.com/mcm-wots/wots-go/src/errors"
	logger "github.com/mcm-wots/wots-go/src/log"
	"github.com/mcm-wots/wots-go/src/metrics"
)

// RandomGenerator fills buf with randomness, deterministic or OS-random at
// the caller's choice. It is never invoked by the signing path itself -
// only by the random-address convenience constructor and by the paranoid
// self-check, which draws its test messages from it.
type RandomGenerator func(buf []byte) error

// Options configures wallet construction.
type Options struct {
	// ComponentGenerator overrides the default secret->seeds derivation.
	// Nil means DefaultComponentGenerator.
	ComponentGenerator ComponentGenerator

	// Paranoid, when true, runs ten sign/verify round trips against fresh
	// random 32-byte messages right after construction, using Random as
	// the message source. This is defensive and probabilistic, never
	// required for correctness.
	Paranoid bool

	// Random supplies randomness for the paranoid self-check and for
	// NewRandom. Nil means crypto/rand.
	Random RandomGenerator
}

// Wallet owns copies of its secret, its derived wallet address, and its
// tag. Clear zeroes all of them.
type Wallet struct {
	name string

	hasSecret bool
	secret    [32]byte // stores the derived private_seed, not the raw input secret (see DESIGN.md)

	hasAddress bool
	wotsAddr   address.WotsAddress

	hasLegacyTag bool
	legacyTag    [address.LegacyTagLen]byte

	hasV3Tag bool
	v3Tag    [address.V3TagLen]byte

	addrHex string
	tagHex  string
}

func defaultOptions(opts *Options) Options {
	if opts == nil {
		return Options{ComponentGenerator: DefaultComponentGenerator}
	}
	out := *opts
	if out.ComponentGenerator == nil {
		out.ComponentGenerator = DefaultComponentGenerator
	}
	return out
}

// Create derives a wallet deterministically from name, a 32-byte secret,
// and an optional tag. The tag, if non-nil, must be either a 12-byte legacy
// tag (legacy v2 semantics) or a 20-byte v3 tag; any other length fails.
func Create(name string, secret []byte, tag []byte, opts *Options) (*Wallet, error) {
	if len(secret) != 32 {
		return nil, cerrors.NewInvalidLength("secret", 32, len(secret))
	}
	if tag != nil && len(tag) != address.LegacyTagLen && len(tag) != address.V3TagLen {
		return nil, cerrors.NewInvalidLength("tag", address.LegacyTagLen, len(tag))
	}

	o := defaultOptions(opts)
	comps := o.ComponentGenerator(secret)

	metrics.KeyGenTotal.Inc()
	pk := wots.PkGen(comps.PrivateSeed, comps.PublicSeed, comps.AddrSeed)

	wotsAddr, err := address.NewWotsAddress(pk, comps.PublicSeed, comps.AddrSeed)
	if err != nil {
		return nil, err
	}

	w := &Wallet{name: name}
	w.secret = comps.PrivateSeed
	w.hasSecret = true

	if len(tag) == address.LegacyTagLen {
		wotsAddr, err = address.TagApply(wotsAddr, tag)
		if err != nil {
			return nil, err
		}
		w.legacyTag = address.TagExtract(wotsAddr)
		w.hasLegacyTag = true
	} else if len(tag) == address.V3TagLen {
		copy(w.v3Tag[:], tag)
		w.hasV3Tag = true
	} else {
		copy(w.v3Tag[:], addrTagFromPk(pk))
		w.hasV3Tag = true
	}

	w.wotsAddr = wotsAddr
	w.hasAddress = true
	w.addrHex = wotsAddr.Hex()
	if w.hasLegacyTag {
		w.tagHex = hex.EncodeToString(w.legacyTag[:])
	} else {
		w.tagHex = hex.EncodeToString(w.v3Tag[:])
	}

	logger.Debugf("wallet %q: derived address, tag=%s", name, w.tagHex)

	if o.Paranoid {
		if err := w.selfCheck(o.random()); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func addrTagFromPk(pk []byte) []byte {
	tag := address.AddrHash(pk)
	return tag[:]
}

func (o Options) random() RandomGenerator {
	if o.Random != nil {
		return o.Random
	}
	return cryptoRandFill
}

// selfCheck signs and verifies ten fresh random 32-byte messages, matching
// the reference implementation's post-creation paranoia loop.
func (w *Wallet) selfCheck(randGen RandomGenerator) error {
	for i := 0; i < 10; i++ {
		var msg [32]byte
		if err := randGen(msg[:]); err != nil {
			return err
		}
		sig, err := w.Sign(msg)
		if err != nil {
			return err
		}
		ok, err := w.Verify(msg, sig)
		if err != nil {
			return err
		}
		if !ok {
			return cerrors.NewInvalidTag("self-check: sign/verify round trip failed")
		}
	}
	return nil
}

// Sign produces a 2144-byte WOTS+ signature over a 32-byte message digest,
// using the wallet's own secret and address.
func (w *Wallet) Sign(msgDigest [32]byte) ([]byte, error) {
	if !w.hasSecret || !w.hasAddress {
		return nil, cerrors.NewInvalidTag("wallet has no secret or address to sign with")
	}
	_, pubSeed, rnd2 := w.wotsAddr.Split()
	metrics.SignTotal.Inc()
	return wots.Sign(msgDigest, w.secret, pubSeed, rnd2), nil
}

// Verify recomputes the candidate public key from sig and compares it
// byte-equal to the wallet's stored public key. It returns false, not an
// error, on cryptographic mismatch; it returns a typed error only for
// malformed inputs.
func (w *Wallet) Verify(msgDigest [32]byte, sig []byte) (bool, error) {
	if !w.hasAddress {
		return false, cerrors.NewInvalidTag("wallet has no address to verify against")
	}
	pk, pubSeed, rnd2 := w.wotsAddr.Split()
	candidate, err := wots.PkFromSig(sig, msgDigest, pubSeed, rnd2)
	if err != nil {
		return false, err
	}
	valid := wots.Equal(candidate, pk)
	metrics.RecordVerify(valid)
	return valid, nil
}

// WotsAddress returns a copy of the wallet's 2208-byte address.
func (w *Wallet) WotsAddress() (address.WotsAddress, bool) {
	return w.wotsAddr, w.hasAddress
}

// LegacyTag returns the wallet's 12-byte legacy tag, if it has one.
func (w *Wallet) LegacyTag() ([address.LegacyTagLen]byte, bool) {
	return w.legacyTag, w.hasLegacyTag
}

// V3Tag returns the wallet's 20-byte v3 tag, if it has one.
func (w *Wallet) V3Tag() ([address.V3TagLen]byte, bool) {
	return w.v3Tag, w.hasV3Tag
}

// AddressHex returns the cached hex encoding of the wallet's address.
func (w *Wallet) AddressHex() string {
	return w.addrHex
}

// TagHex returns the cached hex encoding of the wallet's tag (legacy or
// v3, whichever the wallet carries).
func (w *Wallet) TagHex() string {
	return w.tagHex
}

// NewRandom generates a fresh 32-byte secret via opts.Random (crypto/rand
// if opts or opts.Random is nil) and creates a wallet from it.
func NewRandom(name string, tag []byte, opts *Options) (*Wallet, error) {
	o := defaultOptions(opts)
	randGen := o.random()

	var secret [32]byte
	if err := randGen(secret[:]); err != nil {
		return nil, err
	}
	return Create(name, secret[:], tag, opts)
}

// Clear zeroes the wallet's secret, address and tag, and drops the cached
// hex strings and derived state.
func (w *Wallet) Clear() {
	for i := range w.secret {
		w.secret[i] = 0
	}
	for i := range w.wotsAddr {
		w.wotsAddr[i] = 0
	}
	for i := range w.legacyTag {
		w.legacyTag[i] = 0
	}
	for i := range w.v3Tag {
		w.v3Tag[i] = 0
	}
	w.hasSecret = false
	w.hasAddress = false
	w.hasLegacyTag = false
	w.hasV3Tag = false
	w.addrHex = ""
	w.tagHex = ""
	w.name = ""
}
