package wots

import "testing"

func TestAddressToBytesReversesEachChunk(t *testing.T) {
	var a Address
	for i := range a {
		a[i] = byte(i)
	}
	got := a.ToBytes()

	for chunk := 0; chunk < 8; chunk++ {
		for j := 0; j < 4; j++ {
			want := a[chunk*4+(3-j)]
			if got[chunk*4+j] != want {
				t.Fatalf("chunk %d byte %d = %x, want %x", chunk, j, got[chunk*4+j], want)
			}
		}
	}
}

func TestSetAddressFields(t *testing.T) {
	var a Address
	a.SetChainAddress(0x01020304)
	a.SetHashAddress(0x05060708)
	a.SetKeyAndMask(0x090A0B0C)

	if a[20] != 0x04 || a[21] != 0x03 || a[22] != 0x02 || a[23] != 0x01 {
		t.Fatalf("chain address field not little-endian at offset 20: %x", a[20:24])
	}
	if a[24] != 0x08 || a[25] != 0x07 || a[26] != 0x06 || a[27] != 0x05 {
		t.Fatalf("hash address field not little-endian at offset 24: %x", a[24:28])
	}
	if a[28] != 0x0C || a[29] != 0x0B || a[30] != 0x0A || a[31] != 0x09 {
		t.Fatalf("key/mask field not little-endian at offset 28: %x", a[28:32])
	}
}

func TestPRFDeterministic(t *testing.T) {
	var out1, out2 [N]byte
	key := fill(0x01)
	input := fill(0x02)
	PRF(out1[:], 0, input, key)
	PRF(out2[:], 0, input, key)
	if out1 != out2 {
		t.Fatalf("PRF is not deterministic")
	}
}

func TestThashFMutatesOnlyKeyAndMaskField(t *testing.T) {
	addr := Address(fill(0x00))
	pubSeed := fill(0x00)
	in := fill(0x00)
	var out [N]byte

	before := addr
	ThashF(out[:], 0, in[:], 0, pubSeed, &addr)
	// SetKeyAndMask mutates addr in place within ThashF by contract, so addr
	// itself changes; this asserts the change is confined to byte 28-31.
	for i := 0; i < 28; i++ {
		if addr[i] != before[i] {
			t.Fatalf("ThashF mutated byte %d outside the key/mask field", i)
		}
	}
}
