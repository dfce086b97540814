package dotfield

import "math"

// Cell is a discretized grid coordinate.
type Cell struct {
	X, Y int
}

// Index buckets dot indices by the cell they fall into. Dots never move, so
// the index is only ever rebuilt wholesale on layout.
type Index struct {
	size    float64
	buckets map[Cell][]int
	n       int
}

// NewIndex returns an empty index with the given cell size.
func NewIndex(cellSize float64) *Index {
	return &Index{
		size:    cellSize,
		buckets: make(map[Cell][]int),
	}
}

// CellSize returns the side length of one cell.
func (ix *Index) CellSize() float64 { return ix.size }

// CellOf returns the cell containing the point.
func (ix *Index) CellOf(x, y float64) Cell {
	return Cell{
		X: int(math.Floor(x / ix.size)),
		Y: int(math.Floor(y / ix.size)),
	}
}

// Build discards the current buckets and assigns every dot to its cell.
func (ix *Index) Build(dots []Dot) {
	ix.buckets = make(map[Cell][]int)
	for i := range dots {
		c := ix.CellOf(dots[i].X, dots[i].Y)
		ix.buckets[c] = append(ix.buckets[c], i)
	}
	ix.n = len(dots)
}

// Bucket returns the indices stored under c. The slice must not be modified.
func (ix *Index) Bucket(c Cell) []int {
	return ix.buckets[c]
}

// Buckets returns the number of non-empty cells.
func (ix *Index) Buckets() int { return len(ix.buckets) }

// Len returns the number of indexed dots.
func (ix *Index) Len() int { return ix.n }

// Candidates appends to buf every index stored in the square of cells within
// radius cells of the cell containing (x, y).
func (ix *Index) Candidates(x, y float64, radius int, buf []int) []int {
	center := ix.CellOf(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			bucket, ok := ix.buckets[Cell{center.X + dx, center.Y + dy}]
			if !ok {
				continue
			}
			buf = append(buf, bucket...)
		}
	}
	return buf
}
