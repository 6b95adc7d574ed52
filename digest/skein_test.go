package digest

import (
	"bytes"
	"testing"
)

// No externally checked-in Skein test vector; these cover determinism,
// output sizing per variant, and UBI chaining behavior under incremental
// writes.

func TestSkeinSizes(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	if n := len(NewSkein256().ComputeHash(msg)); n != 32 {
		t.Fatalf("skein256 size = %d, want 32", n)
	}
	if n := len(NewSkein512().ComputeHash(msg)); n != 64 {
		t.Fatalf("skein512 size = %d, want 64", n)
	}
	if n := len(NewSkein1024().ComputeHash(msg)); n != 128 {
		t.Fatalf("skein1024 size = %d, want 128", n)
	}
}

func TestSkeinDeterministic(t *testing.T) {
	msg := []byte("deterministic input")
	a := NewSkein512().ComputeHash(msg)
	b := NewSkein512().ComputeHash(msg)
	if !bytes.Equal(a, b) {
		t.Fatalf("not deterministic: %x vs %x", a, b)
	}
}

func TestSkeinEmptyInput(t *testing.T) {
	a := NewSkein256().ComputeHash(nil)
	b := NewSkein256().ComputeHash([]byte{})
	if !bytes.Equal(a, b) {
		t.Fatalf("nil and empty slice produced different digests: %x vs %x", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("size = %d, want 32", len(a))
	}
}

func TestSkeinDistinguishesInputs(t *testing.T) {
	a := NewSkein512().ComputeHash([]byte("abc"))
	b := NewSkein512().ComputeHash([]byte("abd"))
	if bytes.Equal(a, b) {
		t.Fatal("distinct inputs produced the same digest")
	}
}

func TestSkeinMultiBlockInput(t *testing.T) {
	msg := bytes.Repeat([]byte{0x7e}, 500) // spans multiple Skein-512 64-byte blocks
	a := NewSkein512().ComputeHash(msg)
	b := NewSkein512().ComputeHash(msg)
	if !bytes.Equal(a, b) {
		t.Fatalf("not deterministic across multi-block input: %x vs %x", a, b)
	}
}

func TestSkeinIncrementalMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, twice over")
	oneShot := NewSkein512().ComputeHash(msg)

	d := NewSkein512()
	if err := d.BlockUpdate(msg, 0, len(msg)/2); err != nil {
		t.Fatal(err)
	}
	if err := d.BlockUpdate(msg, len(msg)/2, len(msg)-len(msg)/2); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 64)
	if _, err := d.DoFinal(out, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, oneShot) {
		t.Fatalf("incremental digest %x != one-shot digest %x", out, oneShot)
	}
}

func TestSkeinDestroyIsIdempotent(t *testing.T) {
	d := NewSkein512()
	d.ComputeHash([]byte("x"))
	d.Destroy()
	d.Destroy()
}
