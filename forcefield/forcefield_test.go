package forcefield

import (
	"fmt"
	"math"
	"testing"

	"github.com/dxu16/peppr/chemgraph"
	v3 "github.com/dxu16/peppr/v3"
)

func buildGraph(Te *testing.T, symbols []string, coords []float64, edges []chemgraph.Edge) *chemgraph.Graph {
	conf, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := chemgraph.NewBuilder().Build(symbols, conf, edges)
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func dist(conf *v3.Matrix, i, j int) float64 {
	d := v3.Zeros(1)
	d.Sub(conf.VecView(i), conf.VecView(j))
	return d.Norm(2)
}

func TestTermsLookup(Te *testing.T) {
	par := DefaultTerms()
	co, ok := par.BondLength("C", "O", 2)
	if !ok {
		Te.Fatal("C=O should be parameterized")
	}
	oc, _ := par.BondLength("O", "C", 2)
	if co != oc {
		Te.Error("Bond lengths should be symmetric in the elements:", co, oc)
	}
	fmt.Println("C=O equilibrium:", co)
	if _, ok := par.BondLength("C", "Xx", 1); ok {
		Te.Error("An unknown element should not be parameterized")
	}
	if eq, ok := par.AngleEquilibrium(chemgraph.SP); !ok || math.Abs(eq-math.Pi) > 1e-12 {
		Te.Error("Wrong sp equilibrium angle:", eq)
	}
}

func TestEnergyZeroAtEquilibrium(Te *testing.T) {
	par := DefaultTerms()
	req, _ := par.BondLength("C", "O", 2)
	//linear CO2 at equilibrium lengths
	g := buildGraph(Te, []string{"C", "O", "O"},
		[]float64{0, 0, 0, -req, 0, 0, req, 0, 0},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 2}, {At1: 0, At2: 2, Order: 2}})
	model, err := NewBonded(g, par)
	if err != nil {
		Te.Fatal(err)
	}
	nb, na := model.NTerms()
	if nb != 2 || na != 1 {
		Te.Error("Wrong term counts:", nb, na)
	}
	x := []float64{0, 0, 0, -req, 0, 0, req, 0, 0}
	if e := model.Energy(x); math.Abs(e) > 1e-10 {
		Te.Error("Energy at equilibrium should be zero, got", e)
	}
	grad := make([]float64, len(x))
	model.Gradient(grad, x)
	for i, v := range grad {
		if math.Abs(v) > 1e-8 {
			Te.Error("Gradient at equilibrium should vanish, component", i, "is", v)
		}
	}
}

func TestGradientMatchesFiniteDifferences(Te *testing.T) {
	par := DefaultTerms()
	g := buildGraph(Te, []string{"C", "O", "O"},
		[]float64{0.1, -0.2, 0.3, 1.9, 0.4, -0.1, -0.3, 1.2, 0.5},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 2}, {At1: 0, At2: 2, Order: 2}})
	model, err := NewBonded(g, par)
	if err != nil {
		Te.Fatal(err)
	}
	x := []float64{0.1, -0.2, 0.3, 1.9, 0.4, -0.1, -0.3, 1.2, 0.5}
	grad := make([]float64, len(x))
	model.Gradient(grad, x)
	const h = 1e-6
	for i := range x {
		xp := make([]float64, len(x))
		copy(xp, x)
		xp[i] += h
		xm := make([]float64, len(x))
		copy(xm, x)
		xm[i] -= h
		num := (model.Energy(xp) - model.Energy(xm)) / (2 * h)
		if math.Abs(num-grad[i]) > 1e-4*(1+math.Abs(num)) {
			Te.Errorf("Gradient component %d: analytical %v vs numerical %v", i, grad[i], num)
		}
	}
}

func TestMinimizeDiatomic(Te *testing.T) {
	par := DefaultTerms()
	req, _ := par.BondLength("C", "N", 3)
	//a stretched cyanide
	g := buildGraph(Te, []string{"C", "N"},
		[]float64{0, 0, 0, 5, 0, 0},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 3}})
	conf, err := Minimize(g, par, DefaultIterations)
	if err != nil {
		Te.Fatal(err)
	}
	r := dist(conf, 0, 1)
	if math.Abs(r-req)/req > 1e-2 {
		Te.Errorf("C#N did not converge: got %v, want %v", r, req)
	}
	fmt.Println("C#N relaxed to", r)
}

func TestMinimizeIterationCap(Te *testing.T) {
	par := DefaultTerms()
	g := buildGraph(Te, []string{"C", "N"},
		[]float64{0, 0, 0, 5, 0, 0},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 3}})
	//a one-iteration budget is not an error, just a worse answer
	conf, err := Minimize(g, par, 1)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < conf.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(conf.At(i, j)) {
				Te.Fatal("Capped minimization produced NaN coordinates")
			}
		}
	}
}

func TestMinimizeNoBonds(Te *testing.T) {
	g := buildGraph(Te, []string{"C", "C"},
		[]float64{0, 0, 0, 3, 0, 0}, nil)
	if _, err := Minimize(g, DefaultTerms(), DefaultIterations); err == nil {
		Te.Error("Minimizing a graph with no bonds should fail")
	}
}

func TestMinimizeInvalidConformation(Te *testing.T) {
	g := buildGraph(Te, []string{"C", "N"},
		[]float64{0, 0, 0, 1, 0, 0},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 3}})
	g.Conf().Set(1, 1, math.NaN())
	_, err := Minimize(g, DefaultTerms(), DefaultIterations)
	cerr, ok := err.(*InvalidConformationError)
	if !ok {
		Te.Fatalf("Wrong error type: %T (%v)", err, err)
	}
	if cerr.AtomIndex != 1 {
		Te.Error("Wrong offending atom:", cerr.AtomIndex)
	}
}

func TestMinimizeUnparameterized(Te *testing.T) {
	g := buildGraph(Te, []string{"C", "N"},
		[]float64{0, 0, 0, 1, 0, 0},
		[]chemgraph.Edge{{At1: 0, At2: 1, Order: 3}})
	empty := &Terms{} //no radii, no angles
	_, err := Minimize(g, empty, DefaultIterations)
	uerr, ok := err.(*UnparameterizedTermError)
	if !ok {
		Te.Fatalf("Wrong error type: %T (%v)", err, err)
	}
	if len(uerr.Atoms) != 2 || uerr.Atoms[0] != 0 || uerr.Atoms[1] != 1 {
		Te.Error("Wrong implicated atoms:", uerr.Atoms)
	}
	fmt.Println("got expected parameterization error:", uerr)
}

func TestMinimizeDeterminism(Te *testing.T) {
	par := DefaultTerms()
	run := func() *v3.Matrix {
		g := buildGraph(Te, []string{"C", "O", "O"},
			[]float64{0, 0, 0, 5, 0, 0, 0, 1.5, 0},
			[]chemgraph.Edge{{At1: 0, At2: 1, Order: 2}, {At1: 0, At2: 2, Order: 2}})
		conf, err := Minimize(g, par, 50)
		if err != nil {
			Te.Fatal(err)
		}
		return conf
	}
	a := run()
	b := run()
	for i := 0; i < a.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if a.At(i, j) != b.At(i, j) {
				Te.Errorf("Non-deterministic result at (%d,%d): %v vs %v", i, j, a.At(i, j), b.At(i, j))
			}
		}
	}
}
