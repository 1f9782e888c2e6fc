package address

import (
	"bytes"
	"testing"

	wots "github.com/mcm-wots/wots-go/src/crypto/WOTS/key"
)

func fillPk() []byte {
	pk := make([]byte, wots.SigBytes)
	for i := range pk {
		pk[i] = byte(i % 251)
	}
	return pk
}

func TestNewWotsAddressSplitRoundTrip(t *testing.T) {
	pk := fillPk()
	var pubSeed, rnd2 [32]byte
	for i := range pubSeed {
		pubSeed[i] = 0xAA
		rnd2[i] = 0xBB
	}

	addr, err := NewWotsAddress(pk, pubSeed, rnd2)
	if err != nil {
		t.Fatalf("NewWotsAddress: %v", err)
	}

	gotPk, gotPub, gotRnd2 := addr.Split()
	if !bytes.Equal(gotPk, pk) {
		t.Fatalf("Split() pk mismatch")
	}
	if gotPub != pubSeed {
		t.Fatalf("Split() pub_seed mismatch")
	}
	if gotRnd2 != rnd2 {
		t.Fatalf("Split() rnd2 mismatch")
	}
}

func TestNewWotsAddressRejectsWrongPkLength(t *testing.T) {
	_, err := NewWotsAddress(make([]byte, wots.SigBytes-1), [32]byte{}, [32]byte{})
	if err == nil {
		t.Fatalf("NewWotsAddress with short pk: want error, got nil")
	}
}

func TestHexFromHexRoundTrip(t *testing.T) {
	pk := fillPk()
	addr, err := NewWotsAddress(pk, [32]byte{1}, [32]byte{2})
	if err != nil {
		t.Fatalf("NewWotsAddress: %v", err)
	}

	s := addr.Hex()
	back, err := FromHex(s)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if back != addr {
		t.Fatalf("FromHex(Hex()) != original address")
	}
}

func TestTagIsValidRejectsReservedFirstByte(t *testing.T) {
	tag := make([]byte, LegacyTagLen)
	tag[0] = 0x00
	if TagIsValid(tag) {
		t.Fatalf("TagIsValid accepted first byte 0x00")
	}
	tag[0] = 0x42
	if TagIsValid(tag) {
		t.Fatalf("TagIsValid accepted first byte 0x42")
	}
	tag[0] = 0x01
	if !TagIsValid(tag) {
		t.Fatalf("TagIsValid rejected an otherwise legal tag")
	}
}

func TestTagApplyAndExtract(t *testing.T) {
	pk := fillPk()
	addr, err := NewWotsAddress(pk, [32]byte{}, [32]byte{})
	if err != nil {
		t.Fatalf("NewWotsAddress: %v", err)
	}

	tag := make([]byte, LegacyTagLen)
	for i := range tag {
		tag[i] = byte(i + 1)
	}

	tagged, err := TagApply(addr, tag)
	if err != nil {
		t.Fatalf("TagApply: %v", err)
	}

	extracted := TagExtract(tagged)
	if !bytes.Equal(extracted[:], tag) {
		t.Fatalf("TagExtract() = %x, want %x", extracted, tag)
	}
}

func TestAddrHashDeterministic(t *testing.T) {
	pk := fillPk()
	h1 := AddrHash(pk)
	h2 := AddrHash(pk)
	if h1 != h2 {
		t.Fatalf("AddrHash is not deterministic")
	}
	if len(h1) != V3TagLen {
		t.Fatalf("AddrHash length = %d, want %d", len(h1), V3TagLen)
	}
}

func TestAddrFromImplicitDuplicatesTag(t *testing.T) {
	var tag [V3TagLen]byte
	for i := range tag {
		tag[i] = byte(i)
	}
	addr := AddrFromImplicit(tag)
	if !bytes.Equal(addr[:V3TagLen], tag[:]) {
		t.Fatalf("implicit address first half != tag")
	}
	if !bytes.Equal(addr[V3TagLen:], tag[:]) {
		t.Fatalf("implicit address second half != tag")
	}
}

func TestWotsAddressFromBytesDispatchesByLength(t *testing.T) {
	pk := fillPk()

	fromPk, err := WotsAddressFromBytes(pk)
	if err != nil {
		t.Fatalf("WotsAddressFromBytes(pk): %v", err)
	}
	wantTag := AddrHash(pk)
	if !bytes.Equal(fromPk[:V3TagLen], wantTag[:]) {
		t.Fatalf("WotsAddressFromBytes(pk) tag mismatch")
	}

	zeroed, err := WotsAddressFromBytes(make([]byte, 7))
	if err != nil {
		t.Fatalf("WotsAddressFromBytes(garbage): %v", err)
	}
	if zeroed != [V3AddrAmountLen]byte{} {
		t.Fatalf("WotsAddressFromBytes(garbage) was not zeroed")
	}
}

func TestWithAmountAndAmountOf(t *testing.T) {
	var addr [V3AddrLen]byte
	withAmt := WithAmount(addr, 123456789)
	if AmountOf(withAmt) != 123456789 {
		t.Fatalf("AmountOf(WithAmount(_, 123456789)) = %d, want 123456789", AmountOf(withAmt))
	}
}
