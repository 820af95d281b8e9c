/*
 * doc.go, part of peppr.
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

//Package peppr idealizes the local geometry of small molecular structures.
//Given an atom list and a bond graph with formal bond orders, IdealizeBonds
//relaxes bond lengths and bond angles toward their equilibrium values while
//deliberately ignoring every non-bonded interaction, so clashing but
//unconnected fragments are left exactly where they are. This is useful to
//repair structures whose coordinates come from noisy generation or
//prediction.
//
//The heavy lifting is done by the subpackages: chemgraph builds a
//chemically-typed molecular graph from the structure, and forcefield
//minimizes a bonded-only energy functional over its conformation. The v3
//package holds the coordinate matrices, traj/stf can record a minimization
//as a compressed trajectory, and chemplot draws convergence diagnostics.
package peppr
