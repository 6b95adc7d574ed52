package mac

import (
	"bytes"
	"testing"
)

// fakeBlock is a minimal BlockTransformer for testing subkey derivation
// and chaining without depending on the rijndael package: it XORs the
// input with a fixed keystream, which is enough to exercise CMAC's
// control flow (complete vs. incomplete final block, multi-block
// chaining) deterministically.
type fakeBlock struct {
	n int
	k []byte
}

func newFakeBlock(n int) *fakeBlock {
	k := make([]byte, n)
	for i := range k {
		k[i] = byte(i*31 + 7)
	}
	return &fakeBlock{n: n, k: k}
}

func (f *fakeBlock) BlockSize() int { return f.n }

func (f *fakeBlock) EncryptBlock(in, out []byte) error {
	tmp := make([]byte, f.n)
	for i := 0; i < f.n; i++ {
		tmp[i] = in[i] ^ f.k[i]
	}
	// a touch of diffusion so repeated blocks don't trivially cancel
	for i := 1; i < f.n; i++ {
		tmp[i] ^= tmp[i-1]
	}
	copy(out, tmp)
	return nil
}

func TestCMACDeterministic(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("some message bytes"))
	a := c.Sum(nil)

	c2, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c2.Write([]byte("some message bytes"))
	b := c2.Sum(nil)

	if !bytes.Equal(a, b) {
		t.Fatalf("not deterministic: %x vs %x", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("tag size = %d, want 16", len(a))
	}
}

func TestCMACEmptyMessage(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	tag := c.Sum(nil)
	if len(tag) != 16 {
		t.Fatalf("tag size = %d, want 16", len(tag))
	}
}

func TestCMACCompleteVsIncompleteFinalBlockDiffer(t *testing.T) {
	c1, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c1.Write(bytes.Repeat([]byte{0x42}, 16)) // exactly one block: uses k1
	complete := c1.Sum(nil)

	c2, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c2.Write(bytes.Repeat([]byte{0x42}, 15)) // short one byte: uses k2 + padding
	incomplete := c2.Sum(nil)

	if bytes.Equal(complete, incomplete) {
		t.Fatal("complete and padded-incomplete final blocks produced the same tag")
	}
}

func TestCMACTamperDetection(t *testing.T) {
	c1, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c1.Write([]byte("authentic message"))
	original := c1.Sum(nil)

	c2, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c2.Write([]byte("authentic Message")) // single bit-ish change
	tampered := c2.Sum(nil)

	if bytes.Equal(original, tampered) {
		t.Fatal("tampered message produced the same tag")
	}
}

func TestCMACResetReusesSubkeys(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("message one"))
	first := c.Sum(nil)

	c.Reset()
	c.Write([]byte("message one"))
	second := c.Sum(nil)

	if !bytes.Equal(first, second) {
		t.Fatalf("reset did not reproduce the same tag: %x vs %x", first, second)
	}
}

func TestCMACMultiBlockMessage(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(bytes.Repeat([]byte{0x11}, 50)) // spans three full 16-byte blocks and a partial fourth
	tag := c.Sum(nil)
	if len(tag) != 16 {
		t.Fatalf("tag size = %d, want 16", len(tag))
	}
}

func TestCMACDestroyIsIdempotent(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Destroy()
	c.Destroy()
}

func TestCMACRejectsNilBlock(t *testing.T) {
	_, err := NewCMAC(nil)
	if err == nil {
		t.Fatal("expected error for nil block transformer")
	}
}

func TestCMACVerifyAcceptsCorrectTag(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("message"))
	tag := c.Sum(nil)

	c.Reset()
	c.Write([]byte("message"))
	if err := c.Verify(tag); err != nil {
		t.Fatalf("Verify rejected a correct tag: %v", err)
	}
}

func TestCMACVerifyRejectsTamperedTag(t *testing.T) {
	c, err := NewCMAC(newFakeBlock(16))
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("message"))
	tag := c.Sum(nil)
	tag[0] ^= 0xff

	c.Reset()
	c.Write([]byte("message"))
	if err := c.Verify(tag); err == nil {
		t.Fatal("Verify accepted a tampered tag")
	}
}
