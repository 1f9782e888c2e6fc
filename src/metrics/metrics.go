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

// Package metrics exposes a handful of prometheus counters for the WOTS+
// key generation, signing and verification entry points. The core
// cryptographic routines never import this package themselves - it is
// wired in only by the wallet facade, keeping the leaf primitive free of
// any ambient dependency.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// KeyGenTotal counts WOTS+ public-key derivations.
	KeyGenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mochimo_wots",
		Name:      "keygen_total",
		Help:      "Total number of WOTS+ public keys derived.",
	})

	// SignTotal counts WOTS+ signing operations.
	SignTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mochimo_wots",
		Name:      "sign_total",
		Help:      "Total number of WOTS+ signatures produced.",
	})

	// VerifyTotal counts WOTS+ verification attempts, labeled by outcome.
	VerifyTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mochimo_wots",
		Name:      "verify_total",
		Help:      "Total number of WOTS+ verification attempts, by outcome.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(KeyGenTotal, SignTotal, VerifyTotal)
}

// RecordVerify increments the verify counter for the given outcome.
func RecordVerify(valid bool) {
	if valid {
		VerifyTotal.WithLabelValues("valid").Inc()
		return
	}
	VerifyTotal.WithLabelValues("invalid").Inc()
}
