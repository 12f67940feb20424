package constellation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SphereIntercept returns whether the segment between a and b passes through the sphere of the
// provided radius centered at the origin, i.e. whether that body blocks the line of sight.
// Coincident points never intercept.
func SphereIntercept(a, b Vector3, radius float64) bool {
	// Evaluate from a canonical endpoint so that the result is exactly symmetric.
	if less(b, a) {
		a, b = b, a
	}
	d := b.Sub(a)
	dd := d.Dot(d)
	if dd == 0 {
		return false
	}
	// Closest point of the infinite line to the origin is at a + t*d.
	t := -a.Dot(d) / dd
	if t < 0 || t > 1 {
		return false
	}
	closest := a.Add(d.Scale(t))
	return closest.Dot(closest) < radius*radius
}

// Visible returns whether a and b have a line of sight past the occluding sphere.
func Visible(a, b Vector3, radius float64) bool {
	return !SphereIntercept(a, b, radius)
}

// less orders vectors lexicographically.
func less(a, b Vector3) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// VisibilityMatrix is the symmetric line of sight relation between satellites.
// The diagonal is not defined and always reads false.
type VisibilityMatrix struct {
	n     int
	cells []bool
}

// NewVisibilityMatrix returns an n by n matrix where no pair is visible.
func NewVisibilityMatrix(n int) *VisibilityMatrix {
	if n < 0 {
		n = 0
	}
	return &VisibilityMatrix{n, make([]bool, n*n)}
}

// Len returns the number of satellites.
func (m *VisibilityMatrix) Len() int {
	return m.n
}

// Defined returns whether (i, j) is a pair of distinct satellites.
func (m *VisibilityMatrix) Defined(i, j int) bool {
	return i != j && i >= 0 && j >= 0 && i < m.n && j < m.n
}

// At returns whether satellites i and j see each other.
func (m *VisibilityMatrix) At(i, j int) bool {
	if !m.Defined(i, j) {
		return false
	}
	return m.cells[i*m.n+j]
}

// Set records the visibility of the pair (i, j) in both orderings.
func (m *VisibilityMatrix) Set(i, j int, visible bool) {
	if !m.Defined(i, j) {
		panic(fmt.Errorf("undefined visibility cell (%d, %d) for %d satellites", i, j, m.n))
	}
	m.cells[i*m.n+j] = visible
	m.cells[j*m.n+i] = visible
}

// VisiblePairs returns the visible (i, j) pairs with i < j, in ascending order.
func (m *VisibilityMatrix) VisiblePairs() [][2]int {
	var pairs [][2]int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.cells[i*m.n+j] {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Count returns the number of visible unordered pairs.
func (m *VisibilityMatrix) Count() int {
	return len(m.VisiblePairs())
}

func (m *VisibilityMatrix) String() string {
	return fmt.Sprintf("visibility of %d satellites: %d visible pairs", m.n, m.Count())
}

// EvaluateVisibility tests every unordered pair of positions once against the occluding sphere.
// When workers > 1, rows of the matrix are spread over that many goroutines. Row i owns the
// cells (i, j) and (j, i) for j > i so no two goroutines write to the same cell.
// It returns the matrix and the number of blocked pairs.
func EvaluateVisibility(ctx context.Context, positions []Vector3, radius float64, workers int) (*VisibilityMatrix, int, error) {
	n := len(positions)
	m := NewVisibilityMatrix(n)
	blocked := make([]int, n)
	row := func(i int) {
		for j := i + 1; j < n; j++ {
			if SphereIntercept(positions[i], positions[j], radius) {
				blocked[i]++
				continue
			}
			m.Set(i, j, true)
		}
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
			row(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				row(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, b := range blocked {
		total += b
	}
	return m, total, nil
}
