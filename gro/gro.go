// Package gro parses GROMACS .gro structure files: a fixed-column ASCII
// format listing one atom per line plus a trailing box-vector line.
package gro

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Atom is one atom record from a .gro file.
type Atom struct {
	// ResID is the residue number.
	ResID int
	// ResName is the residue name.
	ResName string
	// Name is the atom name.
	Name string
	// ID is the atom number.
	ID int
	// Pos is the atom position, in nanometres.
	Pos [3]float32
}

// Structure is a parsed .gro file: its title, atom list, and box vector.
type Structure struct {
	// Title is the file's first line, verbatim.
	Title string
	// Atoms holds one entry per atom, in file order.
	Atoms []Atom
	// Box is the diagonal of the box vector line (v1x, v2y, v3z); GROMACS
	// allows a full 9-component triclinic box, but only the axis-aligned
	// lengths are needed for topology and selection purposes.
	Box [3]float32
}

// field slices s[start:end], bounds-checked against a short line, and
// trims surrounding whitespace.
func field(s string, start, end int) (string, error) {
	if end > len(s) {
		return "", errors.Errorf("gro: line too short: need column %d, have %d", end, len(s))
	}
	return strings.TrimSpace(s[start:end]), nil
}

// ReadFile opens and parses the .gro file at path.
func ReadFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "gro.ReadFile")
	}
	defer f.Close()
	return Read(f)
}

// Read parses a .gro structure from r.
func Read(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	// scanErr reports why Scan stopped: the scanner's error, or
	// io.ErrUnexpectedEOF when the input simply ended.
	scanErr := func() error {
		if err := sc.Err(); err != nil {
			return err
		}
		return io.ErrUnexpectedEOF
	}

	if !sc.Scan() {
		return nil, errors.Wrap(scanErr(), "gro.Read: missing title line")
	}
	s := &Structure{Title: sc.Text()}

	if !sc.Scan() {
		return nil, errors.Wrap(scanErr(), "gro.Read: missing atom count line")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, errors.Wrap(err, "gro.Read: atom count")
	}

	s.Atoms = make([]Atom, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, errors.Wrapf(scanErr(), "gro.Read: line %d: missing atom record", i+3)
		}
		line := sc.Text()
		a, err := parseAtomLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "gro.Read: line %d", i+3)
		}
		s.Atoms[i] = a
	}

	if !sc.Scan() {
		return nil, errors.Wrap(scanErr(), "gro.Read: missing box vector line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 3 {
		return nil, errors.Errorf("gro.Read: box vector line: need at least 3 fields, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "gro.Read: box vector component %d", i)
		}
		s.Box[i] = float32(v)
	}

	return s, nil
}

// parseAtomLine decodes one fixed-column atom record:
//
//	columns  0: 5  residue number
//	columns  5:10  residue name
//	columns 10:15  atom name
//	columns 15:20  atom number
//	columns 20:28  x (nm)
//	columns 28:36  y (nm)
//	columns 36:44  z (nm)
//
// Trailing velocity columns, if present, are ignored.
func parseAtomLine(line string) (Atom, error) {
	var a Atom

	resID, err := field(line, 0, 5)
	if err != nil {
		return a, err
	}
	a.ResID, err = strconv.Atoi(strings.TrimSpace(resID))
	if err != nil {
		return a, errors.Wrap(err, "residue number")
	}

	a.ResName, err = field(line, 5, 10)
	if err != nil {
		return a, err
	}
	a.Name, err = field(line, 10, 15)
	if err != nil {
		return a, err
	}

	atomID, err := field(line, 15, 20)
	if err != nil {
		return a, err
	}
	a.ID, err = strconv.Atoi(strings.TrimSpace(atomID))
	if err != nil {
		return a, errors.Wrap(err, "atom number")
	}

	for k := 0; k < 3; k++ {
		start := 20 + k*8
		s, err := field(line, start, start+8)
		if err != nil {
			return a, err
		}
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return a, errors.Wrapf(err, "coordinate %d", k)
		}
		a.Pos[k] = float32(v)
	}

	return a, nil
}
