package xtc

import (
	"io"
	"os"

	"github.com/mdkit/xtc/frame"
	"github.com/pkg/errors"
)

// FrameReader sequentially decodes frames from an XTC file. It owns a
// single mutable Frame and a single decode Scratch, both reused across
// calls to Next: the Coords slice returned by one call is overwritten by
// the next. Callers that need to retain a frame must copy its fields.
type FrameReader struct {
	f       *os.File
	scratch *frame.Scratch
	frame   Frame
	natoms  int
}

// Open opens the XTC file at path for streaming, allocation-free frame
// iteration.
func Open(path string) (*FrameReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "xtc.Open")
	}
	return &FrameReader{f: f, scratch: frame.NewScratch()}, nil
}

// Next decodes and returns the next frame. It returns io.EOF once the file
// is exhausted at a frame boundary; any other error is fatal and leaves
// the reader unusable.
//
// The returned *Frame aliases the reader's own buffers and is only valid
// until the next call to Next.
func (r *FrameReader) Next() (*Frame, error) {
	hdr, err := frame.ReadHeader(r.f)
	if err != nil {
		if errors.Cause(err) == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}

	natoms := int(hdr.NAtoms)
	if r.frame.Coords == nil || r.natoms != natoms {
		r.natoms = natoms
		r.frame.Coords = make([]Vec3, natoms)
	}

	precision, err := frame.Decode(r.f, hdr.Magic, r.natoms, r.scratch, r.frame.Coords)
	if err != nil {
		return nil, err
	}

	r.frame.Step = hdr.Step
	r.frame.Time = hdr.Time
	r.frame.Box = hdr.Box
	r.frame.NAtoms = r.natoms
	r.frame.Precision = precision
	return &r.frame, nil
}

// Close releases the underlying file handle.
func (r *FrameReader) Close() error {
	return r.f.Close()
}
