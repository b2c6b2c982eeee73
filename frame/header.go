// Package frame decodes a single XTC trajectory frame: the fixed XDR
// preamble (magic, atom count, step, time, box) and the compressed
// coordinate block that follows it.
package frame

import (
	"io"

	"github.com/mdkit/xtc/internal/xdr"
	"github.com/pkg/errors"
)

// Legacy and extended XTC magic numbers. The magic selects the width of
// the compressed-block length field: 4 bytes for the legacy format, 8
// bytes for the extended format (needed once a trajectory's compressed
// frames can exceed 2 GiB).
const (
	Magic1995 = 1995
	Magic2023 = 2023
)

// ErrBadMagic is returned when a frame's magic number is neither
// Magic1995 nor Magic2023.
var ErrBadMagic = errors.New("frame: bad magic number")

// Header is the fixed XDR preamble that precedes every frame's compressed
// coordinate block.
//
// Header format (pseudo code):
//
//	type HEADER struct {
//	   magic   int32       // Magic1995 or Magic2023.
//	   natoms  int32
//	   step    int32       // zero-extended to int64 in Step.
//	   time    float32     // picoseconds.
//	   box     [3][3]float32 // row-major, nanometres.
//	}
type Header struct {
	// Magic identifies the frame format; see Magic1995 / Magic2023.
	Magic int32
	// NAtoms is the atom count declared by the frame header.
	NAtoms int32
	// Step is the simulation step number.
	Step int64
	// Time is the simulation time, in picoseconds.
	Time float32
	// Box is the row-major 3x3 periodic box matrix, in nanometres.
	Box [3][3]float32
}

// ReadHeader reads and returns the fixed XDR preamble of a frame.
func ReadHeader(r io.Reader) (*Header, error) {
	magic, err := xdr.ReadInt32(r)
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadHeader: magic")
	}
	if magic != Magic1995 && magic != Magic2023 {
		return nil, errors.Wrapf(ErrBadMagic, "frame.ReadHeader: got %d", magic)
	}

	natoms, err := xdr.ReadInt32(r)
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadHeader: natoms")
	}
	step, err := xdr.ReadInt32(r)
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadHeader: step")
	}
	time, err := xdr.ReadFloat32(r)
	if err != nil {
		return nil, errors.Wrap(err, "frame.ReadHeader: time")
	}

	hdr := &Header{
		Magic:  magic,
		NAtoms: natoms,
		Step:   int64(uint32(step)), // zero-extended, not sign-extended.
		Time:   time,
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := xdr.ReadFloat32(r)
			if err != nil {
				return nil, errors.Wrapf(err, "frame.ReadHeader: box[%d][%d]", i, j)
			}
			hdr.Box[i][j] = v
		}
	}
	return hdr, nil
}
