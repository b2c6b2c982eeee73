// Package xdr implements the subset of Sun External Data Representation
// used by the XTC trajectory format: big-endian fixed-width integers and
// floats, and length-prefixed opaque byte blobs padded to a 4-byte
// boundary.
package xdr

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/mewkiz/pkg/readerutil"
	"github.com/pkg/errors"
)

// ReadInt32 reads a big-endian 32-bit signed integer.
func ReadInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "xdr.ReadInt32")
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// ReadInt64 reads a big-endian 64-bit signed integer.
func ReadInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "xdr.ReadInt64")
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// ReadFloat32 reads a big-endian IEEE-754 single-precision float.
func ReadFloat32(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "xdr.ReadFloat32")
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

// ReadOpaque reads n bytes of opaque data followed by the XDR padding
// required to reach the next 4-byte boundary.
func ReadOpaque(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "xdr.ReadOpaque")
	}
	if err := SkipPadding(r, n); err != nil {
		return nil, err
	}
	return buf, nil
}

// SkipPadding consumes the XDR zero-padding that follows an n-byte opaque
// field, i.e. (4 - n mod 4) mod 4 bytes.
func SkipPadding(r io.Reader, n int) error {
	pad := (4 - n%4) % 4
	for i := 0; i < pad; i++ {
		if _, err := readerutil.ReadByte(r); err != nil {
			return errors.Wrap(err, "xdr.SkipPadding")
		}
	}
	return nil
}
