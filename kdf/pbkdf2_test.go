package kdf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"testing"
)

func TestPBKDF2SingleIterationVector(t *testing.T) {
	want, err := hex.DecodeString("120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b")
	if err != nil {
		t.Fatal(err)
	}
	want = want[:32]

	got, err := PBKDF2([]byte("password"), []byte("salt"), PBKDF2Params{
		Iterations: 1,
		NewHash:    func() hash.Hash { return sha256.New() },
		KeySize:    32,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestPBKDF2RejectsZeroIterations(t *testing.T) {
	_, err := PBKDF2([]byte("p"), []byte("s"), PBKDF2Params{
		Iterations: 0,
		NewHash:    func() hash.Hash { return sha256.New() },
		KeySize:    32,
	})
	if err == nil {
		t.Fatal("expected error for zero iterations")
	}
}

func TestPBKDF2RejectsNilHash(t *testing.T) {
	_, err := PBKDF2([]byte("p"), []byte("s"), PBKDF2Params{Iterations: 1, KeySize: 32})
	if err == nil {
		t.Fatal("expected error for nil NewHash")
	}
}

func TestPBKDF2DifferentSaltsDiffer(t *testing.T) {
	p := PBKDF2Params{Iterations: 10, NewHash: func() hash.Hash { return sha256.New() }, KeySize: 32}
	a, err := PBKDF2([]byte("password"), []byte("salt-a"), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PBKDF2([]byte("password"), []byte("salt-b"), p)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different salts produced the same key")
	}
}
