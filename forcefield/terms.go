//Package forcefield implements a bonded-only energy model (bond stretch
//and angle bend, nothing else) and a local minimizer over the conformation
//of a molecular graph. The deliberate exclusion of every non-bonded term
//(van der Waals, electrostatics, hydrogen bonds) means atoms that are not
//connected through bonds never exert force on each other, so overlapping
//unconnected fragments are left exactly as given.
package forcefield

import (
	"math"

	"github.com/dxu16/peppr/chemgraph"
)

//Covalent radii for single bonds, in Angstrom.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present.
var symbolCovrad1 = map[string]float64{
	"H":  0.31,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Br": 1.20,
	"I":  1.39,
	"Si": 1.11,
	"B":  0.84,
	"Se": 1.20,
	"As": 1.19,
}

//Covalent radii for double bonds, in Angstrom.
//Values from Pyykkoe and Atsumi, 2009 (DOI:10.1002/chem.200901472)
var symbolCovrad2 = map[string]float64{
	"C":  0.67,
	"N":  0.60,
	"O":  0.57,
	"P":  1.02,
	"S":  0.94,
	"Si": 1.07,
	"B":  0.78,
	"Se": 1.07,
	"As": 1.14,
}

//Covalent radii for triple bonds, in Angstrom.
//Values from Pyykkoe, Riedel and Patzschke, 2005 (DOI:10.1002/chem.200401299)
var symbolCovrad3 = map[string]float64{
	"C":  0.60,
	"N":  0.54,
	"O":  0.53,
	"P":  0.94,
	"S":  0.95,
	"Si": 1.02,
	"B":  0.73,
	"Se": 1.07,
	"As": 1.06,
}

//Terms is the read-only parameterization of the bonded energy model:
//equilibrium bond lengths come from per-order covalent radius sums, angle
//equilibria from the hybridization of the central atom. A Terms value is
//meant to be built once and injected into every minimization that should
//share a parameterization; it holds no mutable state, so concurrent use
//on disjoint graphs is safe.
type Terms struct {
	//Radii holds one element->radius table per bond order, Radii[0]
	//being single bonds.
	Radii [3]map[string]float64
	//BondK holds the stretch stiffness per bond order, in energy units
	//per squared Angstrom.
	BondK [3]float64
	//AngleEq maps the central-atom hybridization to the equilibrium
	//angle, in radians.
	AngleEq map[chemgraph.Hybridization]float64
	//AngleK is the bend stiffness, in energy units per squared radian.
	AngleK float64
}

//DefaultTerms returns the parameterization used when the caller does not
//inject one: additive covalent radii per order, stiffer springs for
//higher orders, and ideal sp/sp2/sp3 angles.
func DefaultTerms() *Terms {
	return &Terms{
		Radii: [3]map[string]float64{symbolCovrad1, symbolCovrad2, symbolCovrad3},
		BondK: [3]float64{300, 500, 700},
		AngleEq: map[chemgraph.Hybridization]float64{
			chemgraph.SP:  math.Pi,
			chemgraph.SP2: 2 * math.Pi / 3,
			chemgraph.SP3: 109.471 * math.Pi / 180,
		},
		AngleK: 60,
	}
}

//BondLength returns the equilibrium length for a bond of the given order
//between the two elements, and whether the pair is parameterized.
func (T *Terms) BondLength(sym1, sym2 string, order int) (float64, bool) {
	if order < 1 || order > 3 {
		return 0, false
	}
	tab := T.Radii[order-1]
	if tab == nil {
		return 0, false
	}
	r1, ok1 := tab[sym1]
	r2, ok2 := tab[sym2]
	if !ok1 || !ok2 {
		return 0, false
	}
	return r1 + r2, true
}

//BondStiffness returns the stretch stiffness for a bond of the given
//order. Out-of-range orders fall back to the single-bond stiffness; the
//order is validated at graph-build time, not here.
func (T *Terms) BondStiffness(order int) float64 {
	if order < 1 || order > 3 {
		return T.BondK[0]
	}
	return T.BondK[order-1]
}

//AngleEquilibrium returns the equilibrium angle for a given central-atom
//hybridization, and whether that hybridization is parameterized.
func (T *Terms) AngleEquilibrium(h chemgraph.Hybridization) (float64, bool) {
	if T.AngleEq == nil {
		return 0, false
	}
	eq, ok := T.AngleEq[h]
	return eq, ok
}
