package bitpack

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

// TestSizeOfIntEdgeValues is property 2 and spec scenario S5.
func TestSizeOfIntEdgeValues(t *testing.T) {
	if got := SizeOfInt(0); got != 0 {
		t.Fatalf("SizeOfInt(0) = %d, want 0", got)
	}
	if got := SizeOfInt(1); got != 1 {
		t.Fatalf("SizeOfInt(1) = %d, want 1", got)
	}
	if got := SizeOfInt(255); got != 8 {
		t.Fatalf("SizeOfInt(255) = %d, want 8", got)
	}
	if got := SizeOfInt(256); got != 9 {
		t.Fatalf("SizeOfInt(256) = %d, want 9", got)
	}
	for b := 1; b <= 31; b++ {
		if got := SizeOfInt((1 << uint(b)) - 1); got != b {
			t.Fatalf("SizeOfInt(2^%d-1) = %d, want %d", b, got, b)
		}
		if got := SizeOfInt(1 << uint(b)); got != b+1 {
			t.Fatalf("SizeOfInt(2^%d) = %d, want %d", b, got, b+1)
		}
	}
}

// encodeInts is a reference encoder for ReceiveInts's wire format. It is
// the inverse of the byte-reversed long division ReceiveInts performs:
// compose the mixed-radix digits into a single big integer via Horner's
// method (V = o[0]; V = V*sizes[i] + o[i] for i = 1..k-1), split that
// integer into a little-endian byte vector, and write the bytes out
// MSB-first in increasing index order — the same order ReceiveInts reads
// them back in.
func encodeInts(t *testing.T, out []int, sizes []int, totalBits int) []byte {
	t.Helper()
	var v uint64
	v = uint64(out[0])
	for i := 1; i < len(out); i++ {
		v = v*uint64(sizes[i]) + uint64(out[i])
	}

	nbytes := (totalBits + 7) / 8
	digits := make([]byte, nbytes)
	for j := 0; j < nbytes; j++ {
		digits[j] = byte(v >> uint(8*j))
	}

	buf := new(bytes.Buffer)
	bw := bitio.NewWriter(buf)
	full := totalBits / 8
	for j := 0; j < full; j++ {
		if err := bw.WriteBits(uint64(digits[j]), 8); err != nil {
			t.Fatal(err)
		}
	}
	if rem := totalBits % 8; rem > 0 {
		if err := bw.WriteBits(uint64(digits[full]), uint8(rem)); err != nil {
			t.Fatal(err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestReceiveIntsRoundTrip is property 3: decoding the bit string produced
// by a reference encoder for bases (A, B, C) recovers the original triple.
func TestReceiveIntsRoundTrip(t *testing.T) {
	sizes := []int{5, 11, 7}
	totalBits := SizeOfInts(sizes)
	for a := 0; a < sizes[0]; a++ {
		for b := 0; b < sizes[1]; b++ {
			for c := 0; c < sizes[2]; c++ {
				want := []int{a, b, c}
				data := encodeInts(t, want, sizes, totalBits)
				got := make([]int, len(sizes))
				if err := NewReader(data).ReceiveInts(totalBits, sizes, got); err != nil {
					t.Fatalf("a=%d b=%d c=%d: %v", a, b, c, err)
				}
				if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
					t.Fatalf("a=%d b=%d c=%d: got %v", a, b, c, got)
				}
			}
		}
	}
}

// TestReceiveIntsWideRoundTrip exercises a mixed-radix packing wide enough
// to span more than four bytes.
func TestReceiveIntsWideRoundTrip(t *testing.T) {
	sizes := []int{3, 1 << 20, 1 << 20}
	totalBits := SizeOfInts(sizes)
	want := []int{2, 123456, 987654}
	data := encodeInts(t, want, sizes, totalBits)
	got := make([]int, len(sizes))
	if err := NewReader(data).ReceiveInts(totalBits, sizes, got); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReceiveIntsZeroSize(t *testing.T) {
	sizes := []int{5, 0, 7}
	totalBits := SizeOfInts([]int{5, 11, 7})
	data := make([]byte, (totalBits+7)/8)
	got := make([]int, len(sizes))
	err := NewReader(data).ReceiveInts(totalBits, sizes, got)
	if err != ErrCorruptStream {
		t.Fatalf("expected ErrCorruptStream, got %v", err)
	}
}
