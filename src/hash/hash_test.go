package hash

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestSHA256EmptyInput(t *testing.T) {
	got := SHA256(nil)
	want := sha256.Sum256(nil)
	if got != want {
		t.Fatalf("SHA256(nil) = %x, want %x", got, want)
	}
}

func TestSHA256MatchesStdlib(t *testing.T) {
	data := []byte("mochimo wots test vector")
	got := SHA256(data)
	want := sha256.Sum256(data)
	if got != want {
		t.Fatalf("SHA256(%q) = %x, want %x", data, got, want)
	}
}

func TestIncrementalSHA256MatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	h := NewSHA256()
	h.Update(data[:10])
	h.Update(data[10:])
	got := h.Digest()

	want := SHA256(data)
	if got != want {
		t.Fatalf("incremental digest = %x, want %x", got, want)
	}
}

func TestIncrementalSHA256ResetsAfterDigest(t *testing.T) {
	h := NewSHA256()
	h.Update([]byte("first message"))
	_ = h.Digest()

	got := h.Digest()
	want := SHA256(nil)
	if got != want {
		t.Fatalf("digest after reset = %x, want empty-input hash %x", got, want)
	}
}

func TestRIPEMD160KnownVector(t *testing.T) {
	// RIPEMD160("") = 9c1185a5c5e9fc54612808977ee8f548b2258d31
	got := RIPEMD160(nil)
	want := [SizeRIPEMD160]byte{
		0x9c, 0x11, 0x85, 0xa5, 0xc5, 0xe9, 0xfc, 0x54,
		0x61, 0x28, 0x08, 0x97, 0x7e, 0xe8, 0xf5, 0x48,
		0xb2, 0x25, 0x8d, 0x31,
	}
	if got != want {
		t.Fatalf("RIPEMD160(nil) = %x, want %x", got, want)
	}
}

func TestSHA3512Length(t *testing.T) {
	got := SHA3512([]byte("mochimo"))
	if len(got) != SizeSHA3512 {
		t.Fatalf("SHA3512 length = %d, want %d", len(got), SizeSHA3512)
	}
	if bytes.Equal(got[:], make([]byte, SizeSHA3512)) {
		t.Fatalf("SHA3512 digest was all-zero")
	}
}
