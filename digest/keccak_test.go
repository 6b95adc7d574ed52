package digest

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHexKeccak(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestKeccak256EmptyInput(t *testing.T) {
	want := mustHexKeccak(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	got := NewKeccak256().ComputeHash(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestKeccak512EmptyInput(t *testing.T) {
	want := mustHexKeccak(t, "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e")
	got := NewKeccak512().ComputeHash(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestKeccakSizes(t *testing.T) {
	if n := len(NewKeccak256().ComputeHash([]byte("abc"))); n != 32 {
		t.Fatalf("keccak256 size = %d, want 32", n)
	}
	if n := len(NewKeccak512().ComputeHash([]byte("abc"))); n != 64 {
		t.Fatalf("keccak512 size = %d, want 64", n)
	}
}

func TestKeccakDistinguishesInputs(t *testing.T) {
	a := NewKeccak256().ComputeHash([]byte("abc"))
	b := NewKeccak256().ComputeHash([]byte("abd"))
	if bytes.Equal(a, b) {
		t.Fatal("distinct inputs produced the same digest")
	}
}

func TestKeccakIncrementalMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	oneShot := NewKeccak256().ComputeHash(msg)

	d := NewKeccak256()
	if err := d.BlockUpdate(msg, 0, len(msg)/2); err != nil {
		t.Fatal(err)
	}
	if err := d.BlockUpdate(msg, len(msg)/2, len(msg)-len(msg)/2); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 32)
	if _, err := d.DoFinal(out, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, oneShot) {
		t.Fatalf("incremental digest %x != one-shot digest %x", out, oneShot)
	}
}
