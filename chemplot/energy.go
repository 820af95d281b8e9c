/*
 * energy.go, part of peppr
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

//Package chemplot produces plots from bond idealization runs.
package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicEnergyPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Energy"
	p.Add(plotter.NewGrid())
	return p
}

//EnergyPlot plots, in png format, the energy profile of a minimization,
//one point per recorded frame. The .png extension is appended to
//plotname. Returns an error or nil.
func EnergyPlot(energies []float64, title, plotname string) error {
	if len(energies) == 0 {
		return fmt.Errorf("EnergyPlot: Given no energies")
	}
	p := basicEnergyPlot(title)
	pts := make(plotter.XYs, len(energies))
	for i, v := range energies {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
