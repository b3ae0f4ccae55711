/*
 * graph.go, part of golattice.
 *
 * Copyright 2026 The golattice Authors
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

//Package neighbors builds the nearest-neighbor graph of a populated lattice, and
//obtains coordination numbers and distance statistics from it.
package neighbors

import (
	"errors"
	"fmt"
	"math"
	"sort"

	lattice "github.com/rmera/golattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"
)

//DefaultTol is the relative tolerance used to decide if a distance is equal to the
//nearest-neighbor distance, when no cutoff is given.
const DefaultTol = 1e-3

//ErrEmpty is returned when the structure has fewer than two sites.
var ErrEmpty = errors.New("neighbors: at least two sites are needed")

//Site is a lattice site as a graph node.
type Site struct {
	*lattice.Site
	Index int
}

//ID implements graph.Node.
func (S *Site) ID() int64 {
	return int64(S.Index)
}

//Graph is an undirected graph where nodes are the sites of a populated lattice and
//edges join sites closer than the cutoff. Edge weights are the distances.
//Periodic images are not considered, so sites on the surface have lower coordination.
type Graph struct {
	*simple.WeightedUndirectedGraph
	Cutoff float64
	sites  []*Site
}

//Build returns the neighbor graph of P. If cutoff is not positive, the shortest site-site
//distance (times 1+DefaultTol) is used, so only nearest neighbors are joined.
func Build(P *lattice.Populated, cutoff float64) (*Graph, error) {
	if P == nil || P.Len() < 2 {
		return nil, ErrEmpty
	}
	pos := make([][]float64, P.Len())
	for i := range P.Sites {
		p := P.Sites[i].Position
		pos[i] = p[:]
	}
	if cutoff <= 0 {
		cutoff = shortest(pos) * (1 + DefaultTol)
	}
	G := &Graph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		Cutoff:                  cutoff,
		sites:                   make([]*Site, P.Len()),
	}
	for i := range P.Sites {
		G.sites[i] = &Site{Site: &P.Sites[i], Index: i}
		G.AddNode(G.sites[i])
	}
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			d := floats.Distance(pos[i], pos[j], 2)
			if d <= cutoff {
				G.SetWeightedEdge(G.NewWeightedEdge(G.sites[i], G.sites[j], d))
			}
		}
	}
	return G, nil
}

func shortest(pos [][]float64) float64 {
	ret := math.Inf(1)
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			if d := floats.Distance(pos[i], pos[j], 2); d < ret {
				ret = d
			}
		}
	}
	return ret
}

//Site returns the ith site of the graph.
func (G *Graph) Site(i int) *Site {
	return G.sites[i]
}

//Len returns the number of sites in the graph.
func (G *Graph) Len() int {
	return len(G.sites)
}

//Coordination returns the number of neighbors of the ith site.
func (G *Graph) Coordination(i int) int {
	return G.From(int64(i)).Len()
}

//Neighbors returns the indexes of the neighbors of the ith site, in increasing order.
func (G *Graph) Neighbors(i int) []int {
	nodes := graph.NodesOf(G.From(int64(i)))
	ret := make([]int, len(nodes))
	for j, n := range nodes {
		ret[j] = int(n.ID())
	}
	sort.Ints(ret)
	return ret
}

//Distances returns the lengths of all the edges of the graph.
func (G *Graph) Distances() []float64 {
	edges := graph.WeightedEdgesOf(G.WeightedEdges())
	ret := make([]float64, len(edges))
	for i, e := range edges {
		ret[i] = e.Weight()
	}
	return ret
}

//Stats summarizes a neighbor graph.
type Stats struct {
	Sites int
	Edges int
	//MeanDistance and StdDistance are the mean and standard deviation of the edge lengths.
	MeanDistance float64
	StdDistance  float64
	//Coordination maps each coordination number to the number of sites that have it.
	Coordination map[int]int
	MaxCoord     int
}

//Stats returns a summary of the graph.
func (G *Graph) Stats() Stats {
	d := G.Distances()
	s := Stats{Sites: G.Len(), Edges: len(d), Coordination: make(map[int]int)}
	if len(d) > 0 {
		s.MeanDistance, s.StdDistance = stat.MeanStdDev(d, nil)
	}
	if len(d) == 1 {
		s.StdDistance = 0
	}
	for i := range G.sites {
		c := G.Coordination(i)
		s.Coordination[c]++
		if c > s.MaxCoord {
			s.MaxCoord = c
		}
	}
	return s
}

func (s Stats) String() string {
	keys := make([]int, 0, len(s.Coordination))
	for k := range s.Coordination {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	str := fmt.Sprintf("%d sites, %d contacts, distance %.4f +/- %.4f\n", s.Sites, s.Edges, s.MeanDistance, s.StdDistance)
	for _, k := range keys {
		str += fmt.Sprintf("coordination %2d: %d sites\n", k, s.Coordination[k])
	}
	return str
}

//Hops returns the smallest number of neighbor-to-neighbor steps between sites i and j,
//and false if j can't be reached from i.
func (G *Graph) Hops(i, j int) (int, bool) {
	sh := path.DijkstraFrom(G.sites[i], graphUnit{G})
	p, _ := sh.To(int64(j))
	if len(p) == 0 {
		return 0, false
	}
	return len(p) - 1, true
}

//graphUnit views the graph with all edge weights equal to 1.
type graphUnit struct {
	*Graph
}

func (g graphUnit) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return 0, true
	}
	if g.HasEdgeBetween(xid, yid) {
		return 1, true
	}
	return 0, false
}
