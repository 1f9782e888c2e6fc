package bytebuffer

import "testing"

func TestPutGetRoundTrip(t *testing.T) {
	b := Allocate(8)
	if err := b.PutBytes([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}
	if err := b.Put(0xFF); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b.Rewind()

	got := make([]byte, 4)
	if err := b.Get(got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Get()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	one, err := b.GetOne()
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if one != 0xFF {
		t.Fatalf("GetOne() = %d, want 255", one)
	}
}

func TestPutBytesOverflow(t *testing.T) {
	b := Allocate(4)
	if err := b.PutBytes([]byte{1, 2, 3, 4, 5}); err == nil {
		t.Fatalf("PutBytes beyond capacity: want error, got nil")
	}
}

func TestGetUnderflow(t *testing.T) {
	b := Allocate(2)
	dst := make([]byte, 4)
	if err := b.Get(dst); err == nil {
		t.Fatalf("Get beyond capacity: want error, got nil")
	}
}

func TestSetPositionBoundary(t *testing.T) {
	b := Allocate(4)

	if err := b.SetPosition(-1); err == nil {
		t.Fatalf("SetPosition(-1): want error, got nil")
	}
	if err := b.SetPosition(5); err == nil {
		t.Fatalf("SetPosition(capacity+1): want error, got nil")
	}
	if err := b.SetPosition(4); err != nil {
		t.Fatalf("SetPosition(capacity): want nil, got %v", err)
	}
	if b.Position() != 4 {
		t.Fatalf("Position() = %d, want 4", b.Position())
	}
}

func TestPutIntByteOrder(t *testing.T) {
	b := Allocate(4)
	b.SetOrder(LittleEndian)
	if err := b.PutInt(0x01020304); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	got := b.Array()
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Array()[%d] = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestWrapCopies(t *testing.T) {
	src := []byte{9, 9, 9}
	b := Wrap(src)
	src[0] = 0
	got := b.Array()
	if got[0] != 9 {
		t.Fatalf("Wrap aliased caller's slice: got[0] = %d, want 9", got[0])
	}
}
