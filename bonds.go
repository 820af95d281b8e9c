/*
 * bonds.go, part of peppr.
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

import "fmt"

//BondOrder is the formal multiplicity of a covalent bond.
type BondOrder int

const (
	Single BondOrder = 1
	Double BondOrder = 2
	Triple BondOrder = 3
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

//Bond is an undirected edge of the bond graph, connecting the atoms with
//indices At1 and At2.
type Bond struct {
	Index    int
	At1, At2 int
	Order    BondOrder
}

//Cross returns the index of the atom bonded to origin through B. It
//panics if origin is not part of the bond, as that got to be a
//programming error.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//Copy returns a copy of the bond.
func (B *Bond) Copy() *Bond {
	b := *B
	return &b
}
