package stf

import (
	v3 "github.com/dxu16/peppr/v3"
	"gonum.org/v1/gonum/optimize"
)

//TrajRecorder records the path of a minimization as an stf trajectory,
//one frame per major iteration, plus the starting geometry. It also
//accumulates the energy at each recorded frame, so the relaxation profile
//can be plotted afterwards. It implements optimize.Recorder.
type TrajRecorder struct {
	w        *StfW
	frame    *v3.Matrix
	Energies []float64
}

//NewTrajRecorder creates the trajectory file name and returns a recorder
//for a system of natoms atoms, ready to be handed to a minimization.
func NewTrajRecorder(name string, natoms int, precision ...int) (*TrajRecorder, error) {
	w, err := NewWriter(name, natoms, precision...)
	if err != nil {
		return nil, err
	}
	return &TrajRecorder{w: w, frame: v3.Zeros(natoms)}, nil
}

//Init implements optimize.Recorder.
func (R *TrajRecorder) Init() error {
	R.Energies = R.Energies[:0]
	return nil
}

//Record implements optimize.Recorder. Only the initial location and
//major iterations become frames; function and gradient evaluations are
//ignored.
func (R *TrajRecorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if op != optimize.InitIteration && op != optimize.MajorIteration {
		return nil
	}
	if len(loc.X) != 3*R.w.Len() {
		return Error{"Location size does not match the recorded system", R.w.filename, []string{"Record"}, true}
	}
	for i := 0; i < R.w.Len(); i++ {
		R.frame.Set(i, 0, loc.X[3*i])
		R.frame.Set(i, 1, loc.X[3*i+1])
		R.frame.Set(i, 2, loc.X[3*i+2])
	}
	if err := R.w.WNext(R.frame); err != nil {
		return err
	}
	R.Energies = append(R.Energies, loc.F)
	return nil
}

//Frames returns the number of frames recorded so far.
func (R *TrajRecorder) Frames() int {
	return len(R.Energies)
}

//Close flushes and closes the underlying trajectory file. It must be
//called before the file is read back.
func (R *TrajRecorder) Close() {
	R.w.Close()
}
