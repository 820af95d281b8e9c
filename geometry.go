/*
 * geometry.go, part of peppr.
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
	"math"

	v3 "github.com/dxu16/peppr/v3"
)

//Distance returns the distance, in the units of the coordinates, between
//the ith and jth vectors of conf.
func Distance(conf *v3.Matrix, i, j int) float64 {
	d := v3.Zeros(1)
	d.Sub(conf.VecView(i), conf.VecView(j))
	return d.Norm(2)
}

//Angle returns the angle i-j-k in conf, in radians, with j as the central
//atom.
func Angle(conf *v3.Matrix, i, j, k int) float64 {
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(conf.VecView(i), conf.VecView(j))
	v2.Sub(conf.VecView(k), conf.VecView(j))
	cos := mulDot(v1, v2) / (v1.Norm(2) * v2.Norm(2))
	//floating point can push the cosine just outside [-1,1]
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

func mulDot(a, b *v3.Matrix) float64 {
	var dot float64
	for i := 0; i < 3; i++ {
		dot += a.At(0, i) * b.At(0, i)
	}
	return dot
}
