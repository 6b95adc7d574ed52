package kdf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"testing"
)

func newSHA256() hash.Hash { return sha256.New() }

// RFC 5869 Appendix A test case 1.
func TestHKDFRFC5869Case1(t *testing.T) {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")
	want, _ := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	got, err := HKDF(newSHA256, salt, ikm, info, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestHKDFEmptySaltUsesZeroBlock(t *testing.T) {
	ikm := []byte("input key material")
	a, err := HKDF(newSHA256, nil, ikm, nil, 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := HKDF(newSHA256, make([]byte, 32), ikm, nil, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("nil salt should behave as a zero-filled block: %x vs %x", a, b)
	}
}

func TestHKDFExpandRejectsOversizedLength(t *testing.T) {
	prk := make([]byte, 32)
	_, err := HKDFExpand(newSHA256, prk, nil, 255*32+1)
	if err == nil {
		t.Fatal("expected error for length beyond 255*HashLen")
	}
}

func TestHKDFDifferentInfoDiffer(t *testing.T) {
	ikm := []byte("ikm")
	salt := []byte("salt")
	a, err := HKDF(newSHA256, salt, ikm, []byte("context-a"), 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := HKDF(newSHA256, salt, ikm, []byte("context-b"), 32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different info strings produced the same output")
	}
}
