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

//Package stf implements a simple trajectory format used to record the
//frames visited during a bond idealization run, so the relaxation can be
//inspected or animated afterwards.
//
//An stf file is a zstd-compressed ASCII stream. It starts with a header
//of key=value lines, of which "prec" (a positive integer) is mandatory,
//terminated by a line "** N" where N is the number of atoms per frame.
//After the header, each frame is one line per atom with the x, y and z
//coordinates in Angstrom, multiplied by 10^prec and rounded to integers,
//followed by a line containing only "*". The default precision is 2.
package stf
