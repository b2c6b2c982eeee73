package frame

import (
	"io"

	"github.com/mdkit/xtc/internal/bitpack"
	"github.com/mdkit/xtc/internal/xdr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/pkg/errors"
)

// Vec3 is one atom's (x, y, z) coordinate triple, in nanometres.
type Vec3 [3]float32

// Scratch is the reusable workspace a Decoder needs to decompress one
// frame's coordinate block. A single Scratch may be reused across
// consecutive Decode calls to avoid allocating on the hot path.
type Scratch struct {
	// buf holds the compressed payload read from the stream, grown as
	// needed and reused across frames.
	buf []byte

	br bitpack.Reader

	minint, maxint       [3]int
	sizeint, bitsizeint  [3]int
	sizesmall            [3]int
	prevcoord, thiscoord [3]int
}

// NewScratch returns an empty Scratch ready for use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// growBuf resizes s.buf to exactly n bytes, reusing the backing array when
// it is already large enough.
func (s *Scratch) growBuf(n int) []byte {
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	} else {
		s.buf = s.buf[:n]
	}
	return s.buf
}

// Decode reads one frame's compressed coordinate block from r, positioned
// immediately after the frame's 3x3 box matrix, and fills coords (which
// must have length at least natoms). It returns the frame's precision, or
// -1 if the uncompressed small-system branch was used.
//
// magic selects the width of the compressed-block length field: Magic2023
// frames carry an 8-byte bufsize, Magic1995 frames a 4-byte one.
func Decode(r io.Reader, magic int32, natoms int, s *Scratch, coords []Vec3) (precision float32, err error) {
	lsize, err := xdr.ReadInt32(r)
	if err != nil {
		return 0, errors.Wrap(err, "frame.Decode: lsize")
	}
	n := int(lsize)
	if n != natoms {
		dbg.Println("frame.Decode: lsize", n, "does not match natoms", natoms)
	}
	if len(coords) < n {
		return 0, errors.Errorf("frame.Decode: coords slice too short: have %d, need %d", len(coords), n)
	}

	if n <= 9 {
		for i := 0; i < n; i++ {
			for k := 0; k < 3; k++ {
				v, err := xdr.ReadFloat32(r)
				if err != nil {
					return 0, errors.Wrap(err, "frame.Decode: small-system coordinate")
				}
				coords[i][k] = v
			}
		}
		return -1, nil
	}

	precision, err = xdr.ReadFloat32(r)
	if err != nil {
		return 0, errors.Wrap(err, "frame.Decode: precision")
	}
	for k := 0; k < 3; k++ {
		v, err := xdr.ReadInt32(r)
		if err != nil {
			return 0, errors.Wrapf(err, "frame.Decode: minint[%d]", k)
		}
		s.minint[k] = int(v)
	}
	for k := 0; k < 3; k++ {
		v, err := xdr.ReadInt32(r)
		if err != nil {
			return 0, errors.Wrapf(err, "frame.Decode: maxint[%d]", k)
		}
		s.maxint[k] = int(v)
	}
	smallidx32, err := xdr.ReadInt32(r)
	if err != nil {
		return 0, errors.Wrap(err, "frame.Decode: smallidx")
	}
	smallidx := int(smallidx32)

	largeRange := false
	for k := 0; k < 3; k++ {
		s.sizeint[k] = s.maxint[k] - s.minint[k] + 1
		if s.sizeint[k] > 0xFFFFFF {
			largeRange = true
		}
	}
	bitsize := 0
	if largeRange {
		for k := 0; k < 3; k++ {
			s.bitsizeint[k] = bitpack.SizeOfInt(s.sizeint[k])
		}
	} else {
		bitsize = bitpack.SizeOfInts(s.sizeint[:])
	}

	var bufsize int64
	if magic == Magic2023 {
		bufsize, err = xdr.ReadInt64(r)
	} else {
		var v int32
		v, err = xdr.ReadInt32(r)
		bufsize = int64(v)
	}
	if err != nil {
		return 0, errors.Wrap(err, "frame.Decode: bufsize")
	}

	buf := s.growBuf(int(bufsize))
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, errors.Wrap(err, "frame.Decode: compressed payload")
	}
	if err := xdr.SkipPadding(r, int(bufsize)); err != nil {
		return 0, errors.Wrap(err, "frame.Decode: payload padding")
	}
	s.br.Reset(buf)

	smaller := 0
	if smallidx > bitpack.FirstIdx-1 {
		smaller = bitpack.MagicInts[smallidx-1] / 2
	}
	smallnum := bitpack.MagicInts[smallidx] / 2
	for k := 0; k < 3; k++ {
		s.sizesmall[k] = bitpack.MagicInts[smallidx]
	}

	invPrecision := 1 / precision
	out := 0
	for i := 0; i < n; {
		if largeRange {
			for k := 0; k < 3; k++ {
				b, err := s.br.ReceiveBits(s.bitsizeint[k])
				if err != nil {
					return 0, errors.Wrap(err, "frame.Decode: large-range coordinate")
				}
				s.prevcoord[k] = int(b) + s.minint[k]
			}
		} else {
			var tmp [3]int
			if err := s.br.ReceiveInts(bitsize, s.sizeint[:], tmp[:]); err != nil {
				return 0, errors.Wrap(err, "frame.Decode: base coordinate")
			}
			for k := 0; k < 3; k++ {
				s.prevcoord[k] = tmp[k] + s.minint[k]
			}
		}

		flag, err := s.br.ReceiveBits(1)
		if err != nil {
			return 0, errors.Wrap(err, "frame.Decode: run flag")
		}
		run := 0
		isSmaller := 0
		if flag != 0 {
			v, err := s.br.ReceiveBits(5)
			if err != nil {
				return 0, errors.Wrap(err, "frame.Decode: run length")
			}
			isSmaller = int(v) % 3
			run = int(v) - isSmaller
			isSmaller--
		}

		if run > 0 {
			for k := 0; k < run; k += 3 {
				var tmp [3]int
				if err := s.br.ReceiveInts(smallidx, s.sizesmall[:], tmp[:]); err != nil {
					return 0, errors.Wrap(err, "frame.Decode: small-run coordinate")
				}
				for j := 0; j < 3; j++ {
					s.thiscoord[j] = tmp[j] + s.prevcoord[j] - smallnum
				}
				if k == 0 {
					// Water-molecule swap: the first small-delta atom is
					// decoded relative to the base atom, but on disk it
					// precedes it, so swap before emitting.
					s.thiscoord, s.prevcoord = s.prevcoord, s.thiscoord
					coords[out] = scale(s.prevcoord, invPrecision)
					out++
				} else {
					s.prevcoord = s.thiscoord
				}
				coords[out] = scale(s.thiscoord, invPrecision)
				out++
				i++
			}
		} else {
			coords[out] = scale(s.prevcoord, invPrecision)
			out++
		}

		smallidx += isSmaller
		switch {
		case isSmaller < 0:
			smallnum = smaller
			if smallidx > bitpack.FirstIdx-1 {
				smaller = bitpack.MagicInts[smallidx-1] / 2
			} else {
				smaller = 0
			}
		case isSmaller > 0:
			smaller = smallnum
			smallnum = bitpack.MagicInts[smallidx] / 2
		}
		for k := 0; k < 3; k++ {
			s.sizesmall[k] = bitpack.MagicInts[smallidx]
		}

		i++
	}
	return precision, nil
}

func scale(v [3]int, inv float32) Vec3 {
	return Vec3{
		float32(v[0]) * inv,
		float32(v[1]) * inv,
		float32(v[2]) * inv,
	}
}
