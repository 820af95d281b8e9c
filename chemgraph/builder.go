package chemgraph

import (
	"fmt"

	v3 "github.com/dxu16/peppr/v3"
)

//Edge describes one bond of the input structure by the indices of the two
//atoms it connects and its formal order (1 to 3).
type Edge struct {
	At1, At2 int
	Order    int
}

//ValenceResolver resolves the chemical valence of an element given the
//sum of its bond orders. It is the pluggable boundary for the typing
//heuristics: the default resolver is table-backed, but callers can inject
//their own (e.g. one backed by a full cheminformatics toolkit).
type ValenceResolver interface {
	//Resolve returns the valence to assign to an atom of the given element
	//whose explicit bonds sum to orderSum. It returns an error if no
	//physically sane valence exists for that combination.
	Resolve(symbol string, orderSum int) (int, error)
}

//TableResolver resolves valences from a map of allowed valences per
//element, in ascending order. It implements ValenceResolver.
type TableResolver map[string][]int

func (T TableResolver) Resolve(symbol string, orderSum int) (int, error) {
	allowed, ok := T[symbol]
	if !ok {
		return 0, fmt.Errorf("no valence data for element %s", symbol)
	}
	for _, v := range allowed {
		if orderSum <= v {
			return v, nil
		}
	}
	return 0, fmt.Errorf("element %s admits at most %d bonds, but %d were given", symbol, allowed[len(allowed)-1], orderSum)
}

//DefaultResolver returns a TableResolver over the valence table in this
//package.
func DefaultResolver() TableResolver {
	return TableResolver(symbolValences)
}

//Builder converts an atom list plus a bond list into a typed molecular
//Graph.
type Builder struct {
	res ValenceResolver
}

//NewBuilder returns a Builder. If no resolver is given, or a nil one is,
//the default table-backed resolver is used.
func NewBuilder(res ...ValenceResolver) *Builder {
	B := new(Builder)
	if len(res) > 0 && res[0] != nil {
		B.res = res[0]
	} else {
		B.res = DefaultResolver()
	}
	return B
}

//Build returns a typed molecular graph for the given element symbols,
//starting conformation and bonds. The graph gets a fresh copy of conf, so
//later minimization does not touch the caller's coordinates. Build does
//not infer new bonds and does not add or remove atoms. If an atom's
//element and bonded-order sum cannot be resolved to a sane valence, Build
//fails with a *StructureTypingError naming the atom, and no graph is
//returned.
func (B *Builder) Build(symbols []string, conf *v3.Matrix, edges []Edge) (*Graph, error) {
	natoms := len(symbols)
	if natoms == 0 {
		return nil, &Error{message: "no atoms given", deco: []string{"Build"}}
	}
	if conf == nil || conf.NVecs() != natoms {
		return nil, &Error{message: fmt.Sprintf("conformation does not match the atom count %d", natoms), deco: []string{"Build"}}
	}
	G := new(Graph)
	G.atoms = make([]*Atom, natoms)
	for i, s := range symbols {
		G.atoms[i] = &Atom{Symbol: s, Index: i}
	}
	G.bonds = make([]*Bond, 0, len(edges))
	seen := make(map[[2]int]bool, len(edges))
	for i, e := range edges {
		if e.At1 < 0 || e.At1 >= natoms || e.At2 < 0 || e.At2 >= natoms {
			return nil, &Error{message: fmt.Sprintf("bond %d references an atom out of range: %d-%d", i, e.At1, e.At2), deco: []string{"Build"}}
		}
		if e.At1 == e.At2 {
			return nil, &Error{message: fmt.Sprintf("bond %d connects atom %d to itself", i, e.At1), deco: []string{"Build"}}
		}
		if e.Order < 1 || e.Order > 3 {
			return nil, &Error{message: fmt.Sprintf("bond %d has order %d, only 1-3 are allowed", i, e.Order), deco: []string{"Build"}}
		}
		key := [2]int{e.At1, e.At2}
		if e.At1 > e.At2 {
			key = [2]int{e.At2, e.At1}
		}
		if seen[key] {
			return nil, &Error{message: fmt.Sprintf("duplicated bond between atoms %d and %d", e.At1, e.At2), deco: []string{"Build"}}
		}
		seen[key] = true
		at1 := G.atoms[e.At1]
		at2 := G.atoms[e.At2]
		b := &Bond{Index: i, At1: at1, At2: at2, Order: e.Order}
		at1.Bonds = append(at1.Bonds, b)
		at2.Bonds = append(at2.Bonds, b)
		G.bonds = append(G.bonds, b)
	}
	for _, at := range G.atoms {
		if err := B.typeAtom(at); err != nil {
			return nil, err
		}
	}
	G.conf = v3.Zeros(natoms)
	G.conf.Copy(conf)
	return G, nil
}

//typeAtom fills the Valence, ImplicitH and Hybrid fields of at from its
//explicit bonds.
func (B *Builder) typeAtom(at *Atom) error {
	ordersum := 0
	for _, b := range at.Bonds {
		ordersum += b.Order
	}
	val, err := B.res.Resolve(at.Symbol, ordersum)
	if err != nil {
		return &StructureTypingError{AtomIndex: at.Index, Symbol: at.Symbol, message: err.Error(), deco: []string{"Build"}}
	}
	at.Valence = val
	at.ImplicitH = val - ordersum
	if at.ImplicitH < 0 {
		//a resolver returning a valence below the order sum is misbehaving.
		return &StructureTypingError{AtomIndex: at.Index, Symbol: at.Symbol, message: fmt.Sprintf("resolved valence %d is smaller than the bonded-order sum %d", val, ordersum), deco: []string{"Build"}}
	}
	at.Hybrid = hybridization(at, ordersum)
	return nil
}

//hybridization infers the hybridization of at from its steric number:
//sigma neighbors (explicit plus implicit hydrogens) plus lone pairs.
func hybridization(at *Atom, ordersum int) Hybridization {
	lone := 0
	if ve, ok := symbolValenceElectrons[at.Symbol]; ok {
		lone = (ve - ordersum - at.ImplicitH) / 2
		if lone < 0 {
			lone = 0
		}
	}
	steric := len(at.Bonds) + at.ImplicitH + lone
	switch {
	case steric <= 2:
		return SP
	case steric == 3:
		return SP2
	default:
		return SP3
	}
}
