package stf_test

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/dxu16/peppr"
	"github.com/dxu16/peppr/traj/stf"
	v3 "github.com/dxu16/peppr/v3"
)

//TestWriteRead writes a couple of frames and reads them back.
func TestWriteRead(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "test.stf")
	frames := []*v3.Matrix{v3.Zeros(3), v3.Zeros(3)}
	for f, m := range frames {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m.Set(i, j, float64(f)+0.1*float64(3*i+j))
			}
		}
	}
	w, err := stf.NewWriter(name, 3)
	if err != nil {
		Te.Fatal(err)
	}
	for _, m := range frames {
		if err := w.WNext(m); err != nil {
			Te.Fatal(err)
		}
	}
	w.Close()
	r, header, err := stf.New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	if header["prec"] != "2" {
		Te.Error("Wrong precision in header:", header["prec"])
	}
	if r.Len() != 3 {
		Te.Fatal("Wrong number of atoms:", r.Len())
	}
	got := v3.Zeros(3)
	for f, want := range frames {
		if err := r.Next(got); err != nil {
			Te.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if math.Abs(got.At(i, j)-want.At(i, j)) > 0.005 {
					Te.Errorf("Frame %d atom %d coord %d: got %v want %v", f, i, j, got.At(i, j), want.At(i, j))
				}
			}
		}
	}
	err = r.Next(got)
	if err == nil || !stf.LastFrame(err) {
		Te.Error("Expected a last-frame signal, got:", err)
	}
}

//TestRecorder records an idealization run and reads the trajectory back,
//checking that the relaxation actually lowered the energy and that the
//last frame matches the returned structure.
func TestRecorder(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.0,
		5.0, 0.0, 0.0,
		0.0, 1.5, 0.0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := []*peppr.Atom{{Symbol: "O"}, {Symbol: "C"}, {Symbol: "O"}}
	bonds := []*peppr.Bond{
		{At1: 1, At2: 0, Order: peppr.Double},
		{At1: 1, At2: 2, Order: peppr.Double},
	}
	S, err := peppr.NewStructure(atoms, coords, bonds)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "relax.stf")
	rec, err := stf.NewTrajRecorder(name, S.Len())
	if err != nil {
		Te.Fatal(err)
	}
	ideal, err := peppr.IdealizeBonds(S, peppr.WithRecorder(rec))
	if err != nil {
		Te.Fatal(err)
	}
	rec.Close()
	if rec.Frames() < 2 {
		Te.Fatal("Too few frames recorded:", rec.Frames())
	}
	first := rec.Energies[0]
	last := rec.Energies[len(rec.Energies)-1]
	fmt.Println("energy went from", first, "to", last, "over", rec.Frames(), "frames")
	if last >= first {
		Te.Error("The energy did not decrease:", first, "->", last)
	}
	r, _, err := stf.New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	frame := v3.Zeros(S.Len())
	nframes := 0
	lastframe := v3.Zeros(S.Len())
	for {
		err := r.Next(frame)
		if err != nil {
			if !stf.LastFrame(err) {
				Te.Fatal(err)
			}
			break
		}
		lastframe.Copy(frame)
		nframes++
	}
	if nframes != rec.Frames() {
		Te.Errorf("Recorded %d frames but read %d back", rec.Frames(), nframes)
	}
	for i := 0; i < S.Len(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(lastframe.At(i, j)-ideal.Coords.At(i, j)) > 0.006 {
				Te.Errorf("Last frame (%d,%d) %v does not match the result %v",
					i, j, lastframe.At(i, j), ideal.Coords.At(i, j))
			}
		}
	}
}
