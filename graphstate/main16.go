package graphstate

import "sort"

// Main16Elements is the element count of the Main16 topology.
const Main16Elements = 16

// Main16BulkTarget is the marked bulk element whose recoverability the
// experiments probe.
const Main16BulkTarget = 15

// main16Edges lists the undirected edges of the 16-element topology.
var main16Edges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 6}, {0, 7}, {0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 15},
	{1, 6}, {1, 8}, {1, 13}, {1, 15},
	{2, 3}, {2, 7}, {2, 8}, {2, 15},
	{3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 9}, {3, 11},
	{4, 5}, {4, 6}, {4, 8},
	{5, 6}, {5, 13},
	{7, 9}, {7, 11}, {7, 12}, {7, 13}, {7, 14},
	{8, 10},
	{9, 12}, {9, 14},
	{10, 14},
	{11, 13}, {11, 14},
	{12, 15},
	{14, 15},
}

// Topology is a fixed graph-state layout: the adjacency plus the bulk
// element designation the experiments refer to.
type Topology struct {
	Adjacency  [][]int
	BulkNodes  []int
	BulkTarget int
}

// Main16 returns the 16-element topology. The returned slices are fresh
// copies; callers may mutate them freely.
func Main16() Topology {
	return Topology{
		Adjacency:  FromEdges(Main16Elements, main16Edges),
		BulkNodes:  []int{3, 7, 11, 15},
		BulkTarget: Main16BulkTarget,
	}
}

// FromEdges expands an undirected edge list into a dense symmetric
// adjacency matrix with zero diagonal. Edges outside [0, n) are ignored.
func FromEdges(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for _, e := range edges {
		i, j := e[0], e[1]
		if i < 0 || j < 0 || i >= n || j >= n || i == j {
			continue
		}
		adj[i][j], adj[j][i] = 1, 1
	}

	return adj
}

// Neighbors returns the sorted neighborhood of v in the topology.
func (t Topology) Neighbors(v int) []int {
	var out []int
	for j, linked := range t.Adjacency[v] {
		if linked == 1 {
			out = append(out, j)
		}
	}
	sort.Ints(out)

	return out
}

// Wedge returns the recovery wedge of the bulk target: its sorted
// neighborhood, the minimal fragment set carrying full information about
// the target.
func (t Topology) Wedge() []int {
	return t.Neighbors(t.BulkTarget)
}

// Boundary returns all elements that are not bulk nodes, sorted.
func (t Topology) Boundary() []int {
	bulk := make(map[int]bool, len(t.BulkNodes))
	for _, b := range t.BulkNodes {
		bulk[b] = true
	}
	var out []int
	for i := range t.Adjacency {
		if !bulk[i] {
			out = append(out, i)
		}
	}

	return out
}
