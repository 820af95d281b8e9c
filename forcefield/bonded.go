package forcefield

import (
	"math"

	"github.com/dxu16/peppr/chemgraph"
	"gonum.org/v1/gonum/floats"
)

const (
	//distances are floored at mindist when evaluating stretch terms, so
	//the descent direction stays finite even for nearly coincident
	//bonded atoms.
	mindist = 1e-8
	//sin(theta) is floored at minsin in the bend gradient. At an exactly
	//collinear triplet the analytical gradient vanishes, so a collinear
	//angle away from its equilibrium stays where it is: best effort, no
	//guaranteed correction.
	minsin = 1e-6
)

type bondTerm struct {
	i, j  int
	eq, k float64
}

type angleTerm struct {
	i, j, k int //j is the central atom
	eq, ka  float64
}

//Bonded is the energy functional for one molecular graph: harmonic bond
//stretch plus harmonic angle bend, over a flat coordinate slice
//(x0,y0,z0,x1,...). It deliberately has no other terms.
type Bonded struct {
	natoms int
	bonds  []bondTerm
	angles []angleTerm
}

//NewBonded compiles the bonded terms of g against the parameter table
//par. If some bond or angle cannot be parameterized, it fails with an
//*UnparameterizedTermError naming the atoms involved.
func NewBonded(g *chemgraph.Graph, par *Terms) (*Bonded, error) {
	B := new(Bonded)
	B.natoms = g.Len()
	B.bonds = make([]bondTerm, 0, len(g.Bonds()))
	for _, b := range g.Bonds() {
		eq, ok := par.BondLength(b.At1.Symbol, b.At2.Symbol, b.Order)
		if !ok {
			return nil, &UnparameterizedTermError{
				Atoms:   []int{b.At1.Index, b.At2.Index},
				message: "no equilibrium length for " + b.At1.Symbol + "-" + b.At2.Symbol + " at this bond order",
				deco:    []string{"NewBonded"},
			}
		}
		B.bonds = append(B.bonds, bondTerm{i: b.At1.Index, j: b.At2.Index, eq: eq, k: par.BondStiffness(b.Order)})
	}
	for _, t := range g.Angles() {
		central := g.Atom(t[1])
		eq, ok := par.AngleEquilibrium(central.Hybrid)
		if !ok {
			return nil, &UnparameterizedTermError{
				Atoms:   []int{t[0], t[1], t[2]},
				message: "no equilibrium angle for a " + central.Hybrid.String() + " " + central.Symbol + " center",
				deco:    []string{"NewBonded"},
			}
		}
		B.angles = append(B.angles, angleTerm{i: t[0], j: t[1], k: t[2], eq: eq, ka: par.AngleK})
	}
	return B, nil
}

//NTerms returns the number of stretch and bend terms in the functional.
func (B *Bonded) NTerms() (bonds, angles int) {
	return len(B.bonds), len(B.angles)
}

//Energy returns the bonded energy of the conformation x.
func (B *Bonded) Energy(x []float64) float64 {
	var e float64
	for _, b := range B.bonds {
		r := floats.Distance(x[3*b.i:3*b.i+3], x[3*b.j:3*b.j+3], 2)
		d := r - b.eq
		e += b.k * d * d
	}
	for _, a := range B.angles {
		theta := angle(x, a.i, a.j, a.k)
		d := theta - a.eq
		e += a.ka * d * d
	}
	return e
}

//Gradient puts the gradient of the bonded energy at x into grad.
func (B *Bonded) Gradient(grad, x []float64) {
	for i := range grad {
		grad[i] = 0
	}
	for _, b := range B.bonds {
		xi := x[3*b.i : 3*b.i+3]
		xj := x[3*b.j : 3*b.j+3]
		r := floats.Distance(xi, xj, 2)
		if r < mindist {
			r = mindist
		}
		f := 2 * b.k * (r - b.eq) / r
		for d := 0; d < 3; d++ {
			g := f * (xi[d] - xj[d])
			grad[3*b.i+d] += g
			grad[3*b.j+d] -= g
		}
	}
	var u, v [3]float64
	for _, a := range B.angles {
		xi := x[3*a.i : 3*a.i+3]
		xj := x[3*a.j : 3*a.j+3]
		xk := x[3*a.k : 3*a.k+3]
		var ru, rv float64
		for d := 0; d < 3; d++ {
			u[d] = xi[d] - xj[d]
			v[d] = xk[d] - xj[d]
			ru += u[d] * u[d]
			rv += v[d] * v[d]
		}
		ru = math.Sqrt(ru)
		rv = math.Sqrt(rv)
		if ru < mindist {
			ru = mindist
		}
		if rv < mindist {
			rv = mindist
		}
		cos := (u[0]*v[0] + u[1]*v[1] + u[2]*v[2]) / (ru * rv)
		cos = clamp(cos)
		sin := math.Sqrt(1 - cos*cos)
		if sin < minsin {
			sin = minsin
		}
		f := 2 * a.ka * (math.Acos(cos) - a.eq)
		for d := 0; d < 3; d++ {
			//d(theta)/d(xi) and d(theta)/d(xk); the central atom gets
			//minus the sum, so the net force on the triplet is zero.
			gi := -(v[d]/(ru*rv) - cos*u[d]/(ru*ru)) / sin
			gk := -(u[d]/(ru*rv) - cos*v[d]/(rv*rv)) / sin
			grad[3*a.i+d] += f * gi
			grad[3*a.k+d] += f * gk
			grad[3*a.j+d] -= f * (gi + gk)
		}
	}
}

//angle returns the i-j-k angle of the conformation x, in radians, with j
//as the central atom.
func angle(x []float64, i, j, k int) float64 {
	var u, v [3]float64
	var ru, rv, dot float64
	for d := 0; d < 3; d++ {
		u[d] = x[3*i+d] - x[3*j+d]
		v[d] = x[3*k+d] - x[3*j+d]
		ru += u[d] * u[d]
		rv += v[d] * v[d]
		dot += u[d] * v[d]
	}
	ru = math.Sqrt(ru)
	rv = math.Sqrt(rv)
	if ru < mindist {
		ru = mindist
	}
	if rv < mindist {
		rv = mindist
	}
	return math.Acos(clamp(dot / (ru * rv)))
}

func clamp(cos float64) float64 {
	if cos > 1 {
		return 1
	}
	if cos < -1 {
		return -1
	}
	return cos
}
