/*
 * v3_test.go, part of peppr.
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

package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestBasic(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Views should share memory with the viewed matrix")
	}
	fmt.Println("View\n", A, "\n", View)
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("NewMatrix should fail on a slice not divisible by 3")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Error(err)
	}
	for key, val := range cind {
		for j := 0; j < 3; j++ {
			if B.At(key, j) != A.At(val, j) {
				Te.Errorf("Vector %d not copied correctly", val)
			}
		}
	}
	//now the unsafe one should panic with a wrong-sized receiver,
	//and the safe one should return an error instead.
	C := Zeros(2)
	if err := C.SomeVecsSafe(A, cind); err == nil {
		Te.Error("SomeVecsSafe should have returned an error")
	}
}

func TestDenseConversion(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	d := Matrix2Dense(A)
	d.Set(0, 0, 42)
	if A.At(0, 0) != 42 {
		Te.Error("The Dense should share memory with the Matrix")
	}
	B := Dense2Matrix(d)
	if B.NVecs() != 2 || B.At(0, 0) != 42 {
		Te.Error("Wrong Matrix from Dense", B)
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("Dense2Matrix should panic on a matrix without 3 columns")
		}
	}()
	Dense2Matrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
}

func TestViewsAndSetters(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		Te.Error(err)
	}
	v := A.View(1, 0, 2, 3)
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("Views should share memory with the viewed matrix")
	}
	B := Zeros(3)
	B.SetMatrix(1, 0, v)
	if B.At(1, 0) != 40 || B.At(2, 2) != 9 || B.At(0, 0) != 0 {
		Te.Error("SetMatrix put the submatrix in the wrong place", B)
	}
	B.SwapVecs(0, 2)
	if B.At(0, 2) != 9 || B.At(2, 0) != 0 {
		Te.Error("Wrong vectors after swapping", B)
	}
	//vector 0 of A goes to slot 1 of C, vector 1 of A to slot 0.
	C := Zeros(2)
	C.SetVecs(A, []int{1, 0})
	if C.At(1, 0) != 1 || C.At(0, 0) != 40 {
		Te.Error("SetVecs put the vectors in the wrong slots", C)
	}
}

func TestVecTranslation(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	t, _ := NewMatrix([]float64{1, 1, 1})
	B := Zeros(2)
	B.AddVec(A, t)
	C := Zeros(2)
	C.SubVec(B, t)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if B.At(i, j) != A.At(i, j)+1 {
				Te.Error("Wrong translated vector", i, j, B.At(i, j))
			}
			if C.At(i, j) != A.At(i, j) {
				Te.Error("Subtracting the vector back should recover the original", i, j, C.At(i, j))
			}
		}
	}
}

func TestVecArithmetic(Te *testing.T) {
	u, _ := NewMatrix([]float64{1, 0, 0})
	v, _ := NewMatrix([]float64{0, 1, 0})
	w := Zeros(1)
	w.Cross(u, v)
	if w.At(0, 2) != 1 || w.At(0, 0) != 0 || w.At(0, 1) != 0 {
		Te.Error("Wrong cross product", w)
	}
	d := Zeros(1)
	d.Sub(u, v)
	if math.Abs(d.Norm(2)-math.Sqrt2) > appzero {
		Te.Error("Wrong norm for difference vector", d.Norm(2))
	}
	un := Zeros(1)
	un.Unit(d)
	if math.Abs(un.Norm(2)-1.0) > appzero {
		Te.Error("Unit vector is not unitary", un.Norm(2))
	}
}
