// Package xtc reads GROMACS XTC trajectory files: a streaming decoder for
// the compressed coordinate codec, plus a materializing reader that loads
// an entire trajectory into memory.
package xtc

import (
	"io"

	"github.com/mdkit/xtc/frame"
)

// Vec3 is one atom's (x, y, z) coordinate triple, in nanometres.
type Vec3 = frame.Vec3

// Frame is one decoded trajectory frame.
type Frame struct {
	// Step is the simulation step number.
	Step int64
	// Time is the simulation time, in picoseconds.
	Time float32
	// Box is the row-major 3x3 periodic box matrix, in nanometres.
	Box [3][3]float32
	// NAtoms is the number of atoms in Coords.
	NAtoms int
	// Precision is the integer scaling factor coordinates were quantized
	// with, or -1 if the frame used the uncompressed small-system branch.
	Precision float32
	// Coords holds one Vec3 per atom, in on-disk atom order.
	Coords []Vec3
}

// Trajectory is a fully materialized sequence of frames read from a single
// XTC file. Every frame shares NAtoms.
type Trajectory struct {
	// Path is the source file this trajectory was read from.
	Path string
	// NAtoms is the atom count shared by every frame.
	NAtoms int
	// Frames holds the trajectory's frames in file order.
	Frames []*Frame
}

// ReadXTC reads every frame of the XTC file at path into memory.
func ReadXTC(path string) (*Trajectory, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	traj := &Trajectory{Path: path}
	for {
		f, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		traj.NAtoms = f.NAtoms
		cp := *f
		cp.Coords = append([]Vec3(nil), f.Coords...)
		traj.Frames = append(traj.Frames, &cp)
	}
	return traj, nil
}
