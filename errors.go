/*
 * errors.go, part of peppr.
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
	"github.com/dxu16/peppr/chemgraph"
	"github.com/dxu16/peppr/forcefield"
)

//The three failure modes of an idealization call, re-exported from the
//packages that produce them so callers only need this package to handle
//them. All of them are terminal for the call: no partial or best-effort
//structure is returned on failure.

//StructureTypingError: the bond graph could not be translated into a
//chemically valid molecular graph (bad element/valence combination). It
//carries the index of the offending atom.
type StructureTypingError = chemgraph.StructureTypingError

//InvalidConformationError: the starting coordinates are non-finite. No
//minimization is attempted.
type InvalidConformationError = forcefield.InvalidConformationError

//UnparameterizedTermError: a required bonded-term parameter is missing
//from the force-field table. It carries the implicated atom indices.
type UnparameterizedTermError = forcefield.UnparameterizedTermError

//CError is the concrete error type of this package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements Error and decorates it
//with the caller's name before returning it. Using it with an error from
//outside this library will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
