package forcefield

import (
	"fmt"
	"math"

	"github.com/dxu16/peppr/chemgraph"
	v3 "github.com/dxu16/peppr/v3"
	"gonum.org/v1/gonum/optimize"
)

//GradTolerance is the gradient infinity-norm below which a minimization
//is considered converged.
const GradTolerance = 1e-8

//DefaultIterations is the iteration budget used when the caller passes a
//non-positive one.
const DefaultIterations = 200

//Minimize relaxes the conformation of g under the bonded-only energy
//model parameterized by par, running a conjugate-gradient descent for up
//to maxiter major iterations or until the gradient tolerance is reached,
//whichever comes first. Hitting the iteration cap is not an error: the
//best conformation found so far is returned. The conformation of g is
//updated in place and also returned. An optional optimize.Recorder
//observes the run (see the traj/stf package for one that writes a
//trajectory).
//
//The descent is deterministic: a fixed starting conformation, fixed
//parameterization and fixed iteration budget always give the same result.
func Minimize(g *chemgraph.Graph, par *Terms, maxiter int, rec ...optimize.Recorder) (*v3.Matrix, error) {
	conf := g.Conf()
	natoms := g.Len()
	if len(g.Bonds()) == 0 {
		return nil, &Error{message: "the molecular graph has no bonds, nothing to idealize", deco: []string{"Minimize"}}
	}
	if maxiter <= 0 {
		maxiter = DefaultIterations
	}
	x0 := make([]float64, 3*natoms)
	for i := 0; i < natoms; i++ {
		for j := 0; j < 3; j++ {
			val := conf.At(i, j)
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, &InvalidConformationError{AtomIndex: i, message: fmt.Sprintf("non-finite coordinate %v", val), deco: []string{"Minimize"}}
			}
			x0[3*i+j] = val
		}
	}
	model, err := NewBonded(g, par)
	if err != nil {
		return nil, err
	}
	problem := optimize.Problem{
		Func: model.Energy,
		Grad: model.Gradient,
	}
	settings := &optimize.Settings{
		MajorIterations:   maxiter,
		GradientThreshold: GradTolerance,
	}
	if len(rec) > 0 && rec[0] != nil {
		settings.Recorder = rec[0]
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.CG{})
	if err != nil && !usable(result) {
		//linesearch failures on degenerate geometries still carry the
		//best point found; only a run with no usable point is fatal.
		return nil, &Error{message: "minimization failed: " + err.Error(), deco: []string{"Minimize"}}
	}
	for i := 0; i < natoms; i++ {
		for j := 0; j < 3; j++ {
			conf.Set(i, j, result.X[3*i+j])
		}
	}
	return conf, nil
}

func usable(r *optimize.Result) bool {
	if r == nil || r.X == nil {
		return false
	}
	for _, v := range r.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
