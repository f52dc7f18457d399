package gridsort

import (
	"cmp"
	"math"
	"slices"

	"github.com/colorsful/colorsful/internal/colour"
)

func labPoint(c colour.Lab) [3]float64 {
	return [3]float64{c.L, c.A, c.B}
}

// dist2 is the squared LAB distance. Both chain strategies compare with it so
// they agree on ties.
func dist2(a, b [3]float64) float64 {
	dl, da, db := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dl*dl + da*da + db*db
}

type kdNode struct {
	item   int
	axis   int
	left   int
	right  int
	parent int
	alive  int
	gone   bool
}

// kdTree is a static 3-d tree over a point set that supports removal.
// Removed points are skipped and empty subtrees are pruned.
type kdTree struct {
	points [][3]float64
	nodes  []kdNode
	node   []int // item -> node
	root   int
}

func newKDTree(points [][3]float64) *kdTree {
	t := &kdTree{
		points: points,
		nodes:  make([]kdNode, 0, len(points)),
		node:   make([]int, len(points)),
	}
	items := make([]int, len(points))
	for i := range items {
		items[i] = i
	}
	t.root = t.build(items, 0, -1)
	return t
}

func (t *kdTree) build(items []int, depth, parent int) int {
	if len(items) == 0 {
		return -1
	}
	axis := depth % 3
	slices.SortFunc(items, func(a, b int) int {
		if c := cmp.Compare(t.points[a][axis], t.points[b][axis]); c != 0 {
			return c
		}
		return a - b
	})

	mid := len(items) / 2
	n := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{item: items[mid], axis: axis, parent: parent, alive: len(items)})
	t.node[items[mid]] = n

	left := t.build(items[:mid], depth+1, n)
	right := t.build(items[mid+1:], depth+1, n)
	t.nodes[n].left, t.nodes[n].right = left, right
	return n
}

// Remove drops item from future queries.
func (t *kdTree) Remove(item int) {
	n := t.node[item]
	if t.nodes[n].gone {
		return
	}
	t.nodes[n].gone = true
	for ; n >= 0; n = t.nodes[n].parent {
		t.nodes[n].alive--
	}
}

// Nearest returns the remaining item closest to q, preferring the lowest
// item on ties, or -1 when the tree is empty.
func (t *kdTree) Nearest(q [3]float64) int {
	best, bestD := -1, math.Inf(1)

	var search func(n int)
	search = func(n int) {
		if n < 0 || t.nodes[n].alive == 0 {
			return
		}
		nd := t.nodes[n]
		p := t.points[nd.item]
		if !nd.gone {
			if d := dist2(q, p); d < bestD || (d == bestD && nd.item < best) {
				best, bestD = nd.item, d
			}
		}

		diff := q[nd.axis] - p[nd.axis]
		near, far := nd.left, nd.right
		if diff > 0 {
			near, far = far, near
		}
		search(near)
		if diff*diff <= bestD {
			search(far)
		}
	}
	search(t.root)
	return best
}
