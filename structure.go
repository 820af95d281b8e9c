/*
 * structure.go, part of peppr.
 *
 * Copyright 2024 The peppr authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package peppr

import (
	"fmt"

	v3 "github.com/dxu16/peppr/v3"
)

//Atom contains the per-atom data except for the coordinates, which live
//in the Coords matrix of the Structure. Index is the position of the atom
//in the structure; it is the identity used everywhere in the library.
type Atom struct {
	Name   string //optional, not used by the idealization itself
	Symbol string
	Index  int
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	at := *A
	return &at
}

//Structure is an ordered set of atoms, their coordinates and the bond
//graph connecting them. The order of the atoms is stable: it is the
//correspondence used to write idealized coordinates back.
type Structure struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Bonds  []*Bond
}

//NewStructure makes a Structure from atoms, coordinates and bonds, and
//checks it for consistency. The Index fields of atoms and bonds are
//(re)set to their positions in the corresponding slices. Bonds may be
//nil for an unbonded atom set, although such a structure cannot be
//idealized.
func NewStructure(atoms []*Atom, coords *v3.Matrix, bonds []*Bond) (*Structure, error) {
	if atoms == nil {
		return nil, &CError{"Supplied a nil atom slice", []string{"NewStructure"}}
	}
	if coords == nil {
		return nil, &CError{"Supplied nil coordinates", []string{"NewStructure"}}
	}
	S := &Structure{Atoms: atoms, Coords: coords, Bonds: bonds}
	S.FillIndexes()
	if err := S.Check(); err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	return S, nil
}

//FillIndexes sets the current order of atoms and bonds as their Index.
func (S *Structure) FillIndexes() {
	for i, at := range S.Atoms {
		at.Index = i
	}
	for i, b := range S.Bonds {
		b.Index = i
	}
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if out of
//range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Coord returns a view of the coordinates of the ith atom. Changes to the
//view are reflected in the structure.
func (S *Structure) Coord(i int) *v3.Matrix {
	if i < 0 || i >= S.Coords.NVecs() {
		panic("Structure: Requested coordinate out of bounds")
	}
	return S.Coords.VecView(i)
}

//Copy returns a deep copy of the structure: atoms, coordinates and bonds
//are all duplicated.
func (S *Structure) Copy() *Structure {
	N := new(Structure)
	N.Atoms = make([]*Atom, len(S.Atoms))
	for i, at := range S.Atoms {
		N.Atoms[i] = at.Copy()
	}
	N.Coords = v3.Zeros(S.Coords.NVecs())
	N.Coords.Copy(S.Coords)
	if S.Bonds != nil {
		N.Bonds = make([]*Bond, len(S.Bonds))
		for i, b := range S.Bonds {
			N.Bonds[i] = b.Copy()
		}
	}
	return N
}

//Check verifies that the structure is consistent: the coordinate matrix
//matches the number of atoms, every atom has an element symbol, and every
//bond connects two distinct, existing atoms with a sane order. It returns
//nil or the first problem found.
func (S *Structure) Check() error {
	natoms := S.Len()
	if S.Coords == nil || S.Coords.NVecs() != natoms {
		return &CError{fmt.Sprintf("Inconsistent coordinates/atoms: have %d atoms", natoms), []string{"Check"}}
	}
	for i, at := range S.Atoms {
		if at == nil || at.Symbol == "" {
			return &CError{fmt.Sprintf("Atom %d has no element symbol", i), []string{"Check"}}
		}
	}
	for i, b := range S.Bonds {
		if b == nil {
			return &CError{fmt.Sprintf("Bond %d is nil", i), []string{"Check"}}
		}
		if b.At1 < 0 || b.At1 >= natoms || b.At2 < 0 || b.At2 >= natoms {
			return &CError{fmt.Sprintf("Bond %d references an atom out of range: %d-%d", i, b.At1, b.At2), []string{"Check"}}
		}
		if b.At1 == b.At2 {
			return &CError{fmt.Sprintf("Bond %d connects atom %d to itself", i, b.At1), []string{"Check"}}
		}
		if b.Order < Single || b.Order > Triple {
			return &CError{fmt.Sprintf("Bond %d has unsupported order %d", i, b.Order), []string{"Check"}}
		}
	}
	return nil
}
