package util

import (
	"bytes"
	"testing"
)

func TestRotateRoundTrips(t *testing.T) {
	if v := RotR32(RotL32(0xdeadbeef, 7), 7); v != 0xdeadbeef {
		t.Fatalf("RotR32(RotL32(x,7),7) = %x, want %x", v, 0xdeadbeef)
	}
	if v := RotR64(RotL64(0x0123456789abcdef, 19), 19); v != 0x0123456789abcdef {
		t.Fatalf("RotR64(RotL64(x,19),19) = %x, want %x", v, uint64(0x0123456789abcdef))
	}
}

func TestEndianRoundTrips(t *testing.T) {
	buf := make([]byte, 16)
	PutBE32(buf, 0, 0x01020304)
	if v := BE32(buf, 0); v != 0x01020304 {
		t.Fatalf("BE32 = %x, want %x", v, 0x01020304)
	}
	PutLE32(buf, 4, 0x01020304)
	if v := LE32(buf, 4); v != 0x01020304 {
		t.Fatalf("LE32 = %x, want %x", v, 0x01020304)
	}
	PutBE64(buf, 0, 0x0102030405060708)
	if v := BE64(buf, 0); v != 0x0102030405060708 {
		t.Fatalf("BE64 = %x, want %x", v, uint64(0x0102030405060708))
	}
	PutLE64(buf, 8, 0x0102030405060708)
	if v := LE64(buf, 8); v != 0x0102030405060708 {
		t.Fatalf("LE64 = %x, want %x", v, uint64(0x0102030405060708))
	}
}

func TestIncrementBEWraps(t *testing.T) {
	ctr := []byte{0x00, 0xff, 0xff}
	IncrementBE(ctr)
	if !bytes.Equal(ctr, []byte{0x01, 0x00, 0x00}) {
		t.Fatalf("got %x, want %x", ctr, []byte{0x01, 0x00, 0x00})
	}

	full := []byte{0xff, 0xff, 0xff}
	IncrementBE(full)
	if !bytes.Equal(full, []byte{0x00, 0x00, 0x00}) {
		t.Fatalf("all-0xFF should wrap to all-0x00, got %x", full)
	}
}

func TestAddBEMatchesRepeatedIncrement(t *testing.T) {
	base := []byte{0x01, 0xfe, 0xff}

	viaAdd := append([]byte(nil), base...)
	AddBE(viaAdd, 5)

	viaLoop := append([]byte(nil), base...)
	for i := 0; i < 5; i++ {
		IncrementBE(viaLoop)
	}

	if !bytes.Equal(viaAdd, viaLoop) {
		t.Fatalf("AddBE diverged from repeated IncrementBE: %x vs %x", viaAdd, viaLoop)
	}
}

func TestAddBEWrapsAtTopOfBlock(t *testing.T) {
	ctr := []byte{0xff, 0xff, 0xfe}
	AddBE(ctr, 3)
	if !bytes.Equal(ctr, []byte{0x00, 0x00, 0x01}) {
		t.Fatalf("got %x, want %x", ctr, []byte{0x00, 0x00, 0x01})
	}
}

func TestAddBEZeroIsNoOp(t *testing.T) {
	ctr := []byte{0x12, 0x34, 0x56}
	before := append([]byte(nil), ctr...)
	AddBE(ctr, 0)
	if !bytes.Equal(ctr, before) {
		t.Fatalf("AddBE with n=0 modified the counter: %x vs %x", ctr, before)
	}
}

func TestSecureWipeZeroesBuffer(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	SecureWipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %x", i, v)
		}
	}
}

func TestSecureWipeHandlesEmpty(t *testing.T) {
	SecureWipe(nil) // must not panic
	SecureWipe([]byte{})
}

func TestXorBlock(t *testing.T) {
	dst := []byte{0xff, 0x00, 0xaa}
	src := []byte{0x0f, 0xf0, 0x55}
	XorBlock(dst, src, 3)
	if !bytes.Equal(dst, []byte{0xf0, 0xf0, 0xff}) {
		t.Fatalf("got %x", dst)
	}
}

func TestXorDoesNotAliasInputs(t *testing.T) {
	a := []byte{0xff, 0xff, 0xff}
	b := []byte{0x0f, 0x0f, 0x0f}
	dst := make([]byte, 3)
	Xor(dst, a, b, 3)
	if !bytes.Equal(dst, []byte{0xf0, 0xf0, 0xf0}) {
		t.Fatalf("got %x", dst)
	}
	// a and b must be untouched
	if !bytes.Equal(a, []byte{0xff, 0xff, 0xff}) || !bytes.Equal(b, []byte{0x0f, 0x0f, 0x0f}) {
		t.Fatal("Xor mutated an input operand")
	}
}
