package xdr

import (
	"bytes"
	"io"
	"testing"
)

func TestReadInt32(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x00, 0x01, 0x2c})
	got, err := ReadInt32(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != 300 {
		t.Fatalf("ReadInt32: got %d, want 300", got)
	}
}

func TestReadInt64(t *testing.T) {
	r := bytes.NewReader([]byte{0, 0, 0, 0, 0, 0x4c, 0x4b, 0x40})
	got, err := ReadInt64(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5000000 {
		t.Fatalf("ReadInt64: got %d, want 5000000", got)
	}
}

func TestReadFloat32(t *testing.T) {
	// 7.4124293 encoded as big-endian IEEE-754.
	r := bytes.NewReader([]byte{0x40, 0xed, 0x32, 0x9f})
	got, err := ReadFloat32(r)
	if err != nil {
		t.Fatal(err)
	}
	want := float32(7.4124293)
	if diff := got - want; diff > 1e-5 || diff < -1e-5 {
		t.Fatalf("ReadFloat32: got %v, want %v", got, want)
	}
}

func TestReadOpaquePadding(t *testing.T) {
	// 3 bytes of payload + 1 byte of padding, then a sentinel byte that
	// must not be consumed.
	r := bytes.NewReader([]byte{'a', 'b', 'c', 0x00, 0xff})
	got, err := ReadOpaque(r, 3)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Fatalf("ReadOpaque: got %q, want %q", got, "abc")
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0] != 0xff {
		t.Fatalf("ReadOpaque: padding not fully consumed, rest=%v", rest)
	}
}

func TestReadOpaqueExactBoundary(t *testing.T) {
	// n=4 is already 4-byte aligned: no padding bytes follow.
	r := bytes.NewReader([]byte{1, 2, 3, 4, 0xff})
	got, err := ReadOpaque(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("ReadOpaque: got len %d, want 4", len(got))
	}
	rest, _ := io.ReadAll(r)
	if len(rest) != 1 || rest[0] != 0xff {
		t.Fatalf("ReadOpaque: expected no padding consumed, rest=%v", rest)
	}
}

func TestReadInt32UnexpectedEOF(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x01})
	if _, err := ReadInt32(r); err == nil {
		t.Fatal("ReadInt32: expected error on truncated input")
	}
}
