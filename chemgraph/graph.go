//Package chemgraph provides a chemically-typed molecular graph, built from
//an atom list and a bond list, that satisfies the gonum graph interfaces.
//The graph carries its own conformation (a set of 3D coordinates, one per
//atom) which is what the forcefield package minimizes.
package chemgraph

import (
	"fmt"

	v3 "github.com/dxu16/peppr/v3"
	"gonum.org/v1/gonum/graph"
)

//Hybridization is the inferred hybridization of an atom, derived from its
//steric number (bonded neighbors, implicit hydrogens and lone pairs).
type Hybridization int

const (
	Unset Hybridization = iota
	SP
	SP2
	SP3
)

func (h Hybridization) String() string {
	switch h {
	case SP:
		return "sp"
	case SP2:
		return "sp2"
	case SP3:
		return "sp3"
	}
	return "unset"
}

//Atom is a node of the molecular graph. Index is the position of the atom
//in the originating structure, which is also the gonum node ID, so the
//index correspondence with the input is preserved for write-back.
type Atom struct {
	Symbol    string
	Index     int
	Valence   int //resolved valence for the element in this bonding context
	ImplicitH int
	Hybrid    Hybridization
	Bonds     []*Bond
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Bond is an edge of the molecular graph. Order is the formal bond order,
//1 to 3.
type Bond struct {
	Index    int
	At1, At2 *Atom
	Order    int
}

//Cross returns the atom bonded to origin through the bond B.
//It panics if origin is not part of the bond, as that got to be a
//programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//bonds are not directional, so they are just switched in place.
func (B *Bond) ReversedEdge() graph.Edge {
	B.At1, B.At2 = B.At2, B.At1
	return B
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

//Atoms implements graph.Nodes.
type Atoms struct {
	Atoms []*Atom
	curr  int
}

func (A *Atoms) Len() int {
	return len(A.Atoms) - A.curr
}

func (A *Atoms) Reset() {
	A.curr = 0
}

func (A *Atoms) Next() bool {
	if A.curr >= len(A.Atoms) {
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	return A.Atoms[A.curr-1]
}

//Graph is a typed molecular graph plus a conformation. It implements the
//gonum graph.Graph and graph.Weighted interfaces. A Graph is created by a
//Builder, used by one idealization call, and discarded; it is not meant
//to be shared.
type Graph struct {
	atoms []*Atom
	bonds []*Bond
	conf  *v3.Matrix
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atoms)
}

//Atom returns the ith atom of the graph. Panics if out of range.
func (G *Graph) Atom(i int) *Atom {
	if i < 0 || i >= len(G.atoms) {
		panic(fmt.Sprintf("chemgraph: requested atom %d out of bounds (%d)", i, len(G.atoms)))
	}
	return G.atoms[i]
}

//Bonds returns the bonds of the graph. The returned slice is owned by the
//graph and must not be modified.
func (G *Graph) Bonds() []*Bond {
	return G.bonds
}

//Conf returns the conformation attached to the graph. It is mutated in
//place by the minimizer.
func (G *Graph) Conf() *v3.Matrix {
	return G.conf
}

func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(G.atoms)) {
		return nil
	}
	return G.atoms[id]
}

func (G *Graph) Nodes() graph.Nodes {
	return &Atoms{Atoms: G.atoms}
}

func (G *Graph) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(len(G.atoms)) {
		return graph.Empty
	}
	at := G.atoms[id]
	ret := make([]*Atom, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		ret = append(ret, b.Cross(at))
	}
	return &Atoms{Atoms: ret}
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.Edge(xid, yid) != nil
}

func (G *Graph) Edge(uid, vid int64) graph.Edge {
	for _, b := range G.bonds {
		if (b.At1.ID() == uid && b.At2.ID() == vid) || (b.At1.ID() == vid && b.At2.ID() == uid) {
			return b
		}
	}
	return nil
}

func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	e := G.Edge(uid, vid)
	if e == nil {
		return nil
	}
	return e.(*Bond)
}

func (G *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	e := G.Edge(xid, yid)
	if e == nil {
		return 0, false
	}
	return e.(*Bond).Weight(), true
}

//Angles returns every angle triplet i-j-k of the graph, where j is the
//central atom and i, k are each bonded to j. Each triplet appears once.
func (G *Graph) Angles() [][3]int {
	ret := make([][3]int, 0, len(G.atoms))
	for _, at := range G.atoms {
		for i := 0; i < len(at.Bonds); i++ {
			for j := i + 1; j < len(at.Bonds); j++ {
				n1 := at.Bonds[i].Cross(at)
				n2 := at.Bonds[j].Cross(at)
				ret = append(ret, [3]int{n1.Index, at.Index, n2.Index})
			}
		}
	}
	return ret
}
