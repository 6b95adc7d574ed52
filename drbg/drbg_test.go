package drbg

import (
	"bytes"
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/cryptocex/cex/rijndael"
)

func newSHA256() hash.Hash { return sha256.New() }

func TestBCGDeterministicFromSameSeed(t *testing.T) {
	key := bytes.Repeat([]byte{0x2a}, 16)
	nonce := bytes.Repeat([]byte{0x01}, 16)

	a, err := NewBCG(rijndael.BlockSize128, key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()
	b, err := NewBCG(rijndael.BlockSize128, key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Destroy()

	outA := make([]byte, 48)
	outB := make([]byte, 48)
	if err := a.Generate(outA); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(outB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(outA, outB) {
		t.Fatalf("same seed produced different output: %x vs %x", outA, outB)
	}
}

func TestBCGReseedChangesOutput(t *testing.T) {
	key := bytes.Repeat([]byte{0x2a}, 16)
	nonce := bytes.Repeat([]byte{0x01}, 16)
	g, err := NewBCG(rijndael.BlockSize128, key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy()

	before := make([]byte, 32)
	if err := g.Generate(before); err != nil {
		t.Fatal(err)
	}
	if err := g.Reseed(bytes.Repeat([]byte{0x55}, 16)); err != nil {
		t.Fatal(err)
	}
	after := make([]byte, 32)
	if err := g.Generate(after); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(before, after) {
		t.Fatal("reseeding with different key produced the same output")
	}
}

func TestBCGDestroyIsIdempotent(t *testing.T) {
	g, err := NewBCG(rijndael.BlockSize128, make([]byte, 16), make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	g.Destroy()
	g.Destroy()
}

func TestDCGDeterministicFromSameSeed(t *testing.T) {
	seed := []byte("a sufficiently long seed value")

	a, err := NewDCG(newSHA256, seed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDCG(newSHA256, seed)
	if err != nil {
		t.Fatal(err)
	}

	outA := make([]byte, 48)
	outB := make([]byte, 48)
	if err := a.Generate(outA); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(outB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(outA, outB) {
		t.Fatalf("same seed produced different output: %x vs %x", outA, outB)
	}
}

func TestDCGRejectsEmptySeed(t *testing.T) {
	if _, err := NewDCG(newSHA256, nil); err == nil {
		t.Fatal("expected error for empty seed")
	}
}

func TestDCGReseedChangesOutput(t *testing.T) {
	g, err := NewDCG(newSHA256, []byte("initial seed"))
	if err != nil {
		t.Fatal(err)
	}
	before := make([]byte, 32)
	if err := g.Generate(before); err != nil {
		t.Fatal(err)
	}
	if err := g.Reseed([]byte("different seed")); err != nil {
		t.Fatal(err)
	}
	after := make([]byte, 32)
	if err := g.Generate(after); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(before, after) {
		t.Fatal("reseeding with a different seed produced the same output")
	}
}

func TestHCGDeterministicFromSameSeed(t *testing.T) {
	seed := []byte("HMAC DRBG instantiation seed material")

	a, err := NewHCG(newSHA256, seed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHCG(newSHA256, seed)
	if err != nil {
		t.Fatal(err)
	}

	outA := make([]byte, 80) // spans more than one SHA-256 output block
	outB := make([]byte, 80)
	if err := a.Generate(outA); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(outB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(outA, outB) {
		t.Fatalf("same seed produced different output: %x vs %x", outA, outB)
	}
}

func TestHCGSuccessiveGenerateCallsDiffer(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	a := make([]byte, 32)
	b := make([]byte, 32)
	if err := g.Generate(a); err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(b); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two successive Generate calls produced identical output")
	}
}

func TestHCGReseedChangesOutput(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("seed one"))
	if err != nil {
		t.Fatal(err)
	}
	before := make([]byte, 32)
	if err := g.Generate(before); err != nil {
		t.Fatal(err)
	}
	if err := g.Reseed([]byte("seed two")); err != nil {
		t.Fatal(err)
	}
	after := make([]byte, 32)
	if err := g.Generate(after); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(before, after) {
		t.Fatal("reseeding produced the same output")
	}
}

func TestHCGRejectsEmptyReseed(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Reseed(nil); err == nil {
		t.Fatal("expected error for empty reseed material")
	}
}

func TestPBRMinimumSeedSizeTable(t *testing.T) {
	cases := map[string]int{
		"blake256": 64, "blake512": 128,
		"keccak256": 136, "keccak512": 72,
		"sha256": 55, "sha512": 111,
		"skein256": 32, "skein512": 64, "skein1024": 128,
	}
	for name, want := range cases {
		if got := MinimumSeedSize(name); got != want {
			t.Errorf("MinimumSeedSize(%q) = %d, want %d", name, got, want)
		}
	}
	if got := MinimumSeedSize("not-a-real-digest"); got != 0 {
		t.Errorf("unknown digest should report 0, got %d", got)
	}
}

func TestPBRGenerateAcrossRefill(t *testing.T) {
	seed := bytes.Repeat([]byte{0x9c}, 64) // meets sha256's minimum seed size
	g, err := NewPBR(newSHA256, seed, 2, 64)
	if err != nil {
		t.Fatal(err)
	}
	// bigger than the internal buffer, forcing at least one refill
	out := make([]byte, 200)
	if err := g.Generate(out); err != nil {
		t.Fatal(err)
	}
	allZero := true
	for _, b := range out {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("PBR output was all zero")
	}
}

func TestPBRDeterministicFromSameSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 64)
	a, err := NewPBR(newSHA256, seed, 2, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPBR(newSHA256, seed, 2, 64)
	if err != nil {
		t.Fatal(err)
	}
	outA := make([]byte, 150)
	outB := make([]byte, 150)
	if err := a.Generate(outA); err != nil {
		t.Fatal(err)
	}
	if err := b.Generate(outB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(outA, outB) {
		t.Fatalf("same seed produced different output: %x vs %x", outA, outB)
	}
}

func TestPBRRejectsSmallBuffer(t *testing.T) {
	if _, err := NewPBR(newSHA256, make([]byte, 64), 1, 32); err == nil {
		t.Fatal("expected error for buffer size below 64")
	}
}

func TestGetRangedStaysWithinBound(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("ranged draw seed"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		v, err := GetRanged(g, 0, 9)
		if err != nil {
			t.Fatal(err)
		}
		if v > 9 {
			t.Fatalf("GetRanged returned %d, exceeds max 9", v)
		}
	}
}

func TestGetRangedRejectsMaxBelowMin(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("seed"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := GetRanged(g, 10, 5); err == nil {
		t.Fatal("expected error for max < min")
	}
}

func TestGetRangedHonorsMinBound(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("min bound seed"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		v, err := GetRanged(g, 100, 109)
		if err != nil {
			t.Fatal(err)
		}
		if v < 100 || v > 109 {
			t.Fatalf("GetRanged(100, 109) returned %d, outside [100, 109]", v)
		}
	}
}

func TestGetRangedSingleValueRange(t *testing.T) {
	g, err := NewHCG(newSHA256, []byte("degenerate range seed"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := GetRanged(g, 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Fatalf("GetRanged(7, 7) = %d, want 7", v)
	}
}

func TestBitLengthCoversByteBoundaries(t *testing.T) {
	cases := map[uint64]int{
		0:   1,
		1:   1,
		2:   2,
		255: 8,
		256: 9,
		511: 9,
		512: 10,
	}
	for v, want := range cases {
		if got := bitLength(v); got != want {
			t.Errorf("bitLength(%d) = %d, want %d", v, got, want)
		}
	}
}
