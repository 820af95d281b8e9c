/*
 * idealize.go, part of peppr.
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
	"github.com/dxu16/peppr/chemgraph"
	"github.com/dxu16/peppr/forcefield"
	v3 "github.com/dxu16/peppr/v3"
	"gonum.org/v1/gonum/optimize"
)

//DefaultIterations is the major-iteration budget used by IdealizeBonds
//when no WithIterations option is given.
const DefaultIterations = forcefield.DefaultIterations

type idealizeOpts struct {
	iterations int
	terms      *forcefield.Terms
	resolver   chemgraph.ValenceResolver
	recorder   optimize.Recorder
}

//Option modifies the behavior of IdealizeBonds.
type Option func(*idealizeOpts)

//WithIterations sets the major-iteration budget of the minimization.
func WithIterations(n int) Option {
	return func(o *idealizeOpts) { o.iterations = n }
}

//WithTerms injects a force-field parameter table different from the
//default one. The table is read-only for the call.
func WithTerms(t *forcefield.Terms) Option {
	return func(o *idealizeOpts) { o.terms = t }
}

//WithResolver injects a valence resolver different from the default
//table-backed one.
func WithResolver(r chemgraph.ValenceResolver) Option {
	return func(o *idealizeOpts) { o.resolver = r }
}

//WithRecorder attaches a recorder to the minimization, e.g. a
//traj/stf.TrajRecorder to write the run as a compressed trajectory.
func WithRecorder(rec optimize.Recorder) Option {
	return func(o *idealizeOpts) { o.recorder = rec }
}

//IdealizeBonds returns a copy of S whose bond lengths and bond angles
//have been relaxed toward their equilibrium values. Only bonded terms
//enter the underlying energy model, so atoms not connected through bonds
//never push each other apart: clashes between unconnected fragments are
//preserved, by design. The input structure is not modified; the returned
//structure shares nothing with it and has the same atom count, order,
//elements and bonds, with only the positions changed.
//
//It can fail with a *StructureTypingError, an *InvalidConformationError
//or an *UnparameterizedTermError, as described in errors.go. Exhausting
//the iteration budget before full convergence is not a failure.
func IdealizeBonds(S *Structure, opts ...Option) (*Structure, error) {
	if S == nil {
		return nil, &CError{"Supplied a nil Structure", []string{"IdealizeBonds"}}
	}
	if err := S.Check(); err != nil {
		return nil, errDecorate(err, "IdealizeBonds")
	}
	o := &idealizeOpts{iterations: DefaultIterations, terms: forcefield.DefaultTerms()}
	for _, f := range opts {
		f(o)
	}
	symbols := make([]string, S.Len())
	for i, at := range S.Atoms {
		symbols[i] = at.Symbol
	}
	edges := make([]chemgraph.Edge, len(S.Bonds))
	for i, b := range S.Bonds {
		edges[i] = chemgraph.Edge{At1: b.At1, At2: b.At2, Order: int(b.Order)}
	}
	g, err := chemgraph.NewBuilder(o.resolver).Build(symbols, S.Coords, edges)
	if err != nil {
		return nil, errDecorate(err, "IdealizeBonds")
	}
	var conf *v3.Matrix
	if o.recorder != nil {
		conf, err = forcefield.Minimize(g, o.terms, o.iterations, o.recorder)
	} else {
		conf, err = forcefield.Minimize(g, o.terms, o.iterations)
	}
	if err != nil {
		return nil, errDecorate(err, "IdealizeBonds")
	}
	ret := S.Copy()
	ret.Coords.Copy(conf)
	return ret, nil
}
