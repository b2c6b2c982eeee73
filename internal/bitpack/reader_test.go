package bitpack

import "testing"

// TestReceiveBitsNibbles is spec scenario S4: reading four nibbles out of
// two bytes must reproduce the exact MSB-first bit order.
func TestReceiveBitsNibbles(t *testing.T) {
	r := NewReader([]byte{0xD6, 0xAA})
	want := []uint32{0xD, 0x6, 0xA, 0xA}
	for i, w := range want {
		got, err := r.ReceiveBits(4)
		if err != nil {
			t.Fatalf("ReceiveBits(4) #%d: %v", i, err)
		}
		if got != w {
			t.Fatalf("ReceiveBits(4) #%d: got %#x, want %#x", i, got, w)
		}
	}
}

// TestReceiveBitsSplitVsWhole is property 4: reading n bits then m bits
// must agree with reading n+m bits in one call, for n+m <= 24.
func TestReceiveBitsSplitVsWhole(t *testing.T) {
	data := []byte{0x9a, 0x5c, 0xf1, 0x03, 0x77, 0x88}
	cases := []struct{ n, m int }{
		{1, 1}, {3, 5}, {8, 8}, {7, 9}, {12, 12}, {1, 23}, {20, 4},
	}
	for _, c := range cases {
		r1 := NewReader(data)
		a, err := r1.ReceiveBits(c.n)
		if err != nil {
			t.Fatal(err)
		}
		b, err := r1.ReceiveBits(c.m)
		if err != nil {
			t.Fatal(err)
		}
		split := uint64(a)<<uint(c.m) | uint64(b)

		r2 := NewReader(data)
		whole, err := r2.ReceiveBits(c.n + c.m)
		if err != nil {
			t.Fatal(err)
		}
		if split != uint64(whole) {
			t.Fatalf("n=%d m=%d: split read %#x != whole read %#x", c.n, c.m, split, whole)
		}
	}
}

func TestReceiveBitsOverrun(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReceiveBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReceiveBits(1); err == nil {
		t.Fatal("expected ErrCorruptStream reading past end of buffer")
	}
}

func TestReceiveBits32(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56, 0x78})
	got, err := r.ReceiveBits(32)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint32(0x12345678); got != want {
		t.Fatalf("ReceiveBits(32): got %#x, want %#x", got, want)
	}
}
