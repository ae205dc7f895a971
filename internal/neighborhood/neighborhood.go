// Package neighborhood generates the offset vectors that define which cells
// count as neighbors on an N-dimensional toroidal grid.
//
// Two topologies are supported:
//
//   - Moore: every offset whose Chebyshev norm is at most the range
//   - von Neumann: every offset whose Manhattan norm is at most the range
//
// The zero vector is never part of a neighborhood. Generation is
// deterministic: for identical inputs the offsets come back in the same
// lexicographic order (axis 0 outermost), so callers may precompute per-offset
// data once and reuse it for every cell and step.
package neighborhood

import (
	"fmt"
	"strings"
)

// Topology selects the distance predicate used to build a neighborhood.
type Topology string

const (
	// Moore includes diagonals (Chebyshev distance).
	Moore Topology = "moore"
	// VonNeumann is orthogonal only (Manhattan distance).
	VonNeumann Topology = "von_neumann"
)

// ParseTopology accepts "moore", "von_neumann" and "vonneumann", case-insensitively.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moore":
		return Moore, nil
	case "von_neumann", "vonneumann", "von-neumann":
		return VonNeumann, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
}

// Spec describes a neighborhood independent of the grid it is applied to.
type Spec struct {
	Topology Topology
	Range    int
}

// Offsets is an ordered set of non-zero offset vectors of equal length.
type Offsets [][]int

// Rank reports the dimensionality of the offsets, or 0 when empty.
func (o Offsets) Rank() int {
	if len(o) == 0 {
		return 0
	}
	return len(o[0])
}

// Generate enumerates every integer vector in [-range, range]^N, drops the
// zero vector and keeps those within range under the topology's norm.
func Generate(dims []int, spec Spec) (Offsets, error) {
	if err := validate(dims, spec.Topology, spec.Range); err != nil {
		return nil, err
	}
	var out Offsets
	enumerate(len(dims), spec.Range, func(v []int) {
		if within(spec.Topology, v, spec.Range) {
			out = append(out, append([]int(nil), v...))
		}
	})
	return out, nil
}

// MaxNeighborCount returns the size of the neighborhood, which is the largest
// value a neighbor count can take.
func MaxNeighborCount(dims []int, topology Topology, r int) (int, error) {
	if err := validate(dims, topology, r); err != nil {
		return 0, err
	}
	n := len(dims)
	switch {
	case topology == Moore:
		side := 2*r + 1
		total := 1
		for i := 0; i < n; i++ {
			total *= side
		}
		return total - 1, nil
	case topology == VonNeumann && r == 1:
		return 2 * n, nil
	}
	count := 0
	enumerate(n, r, func(v []int) {
		if within(topology, v, r) {
			count++
		}
	})
	return count, nil
}

func validate(dims []int, topology Topology, r int) error {
	if len(dims) == 0 {
		return fmt.Errorf("%w: at least one axis is required", ErrInvalidDimension)
	}
	for axis, d := range dims {
		if d <= 0 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidDimension, axis, d)
		}
	}
	if r < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRange, r)
	}
	if topology != Moore && topology != VonNeumann {
		return fmt.Errorf("%w: %q", ErrUnknownTopology, topology)
	}
	return nil
}

// enumerate calls visit with every non-zero vector in [-r, r]^n. The slice
// passed to visit is reused between calls.
func enumerate(n, r int, visit func([]int)) {
	v := make([]int, n)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == n {
			if !isZero(v) {
				visit(v)
			}
			return
		}
		for d := -r; d <= r; d++ {
			v[axis] = d
			rec(axis + 1)
		}
	}
	rec(0)
}

func within(topology Topology, v []int, r int) bool {
	switch topology {
	case Moore:
		return chebyshev(v) <= r
	case VonNeumann:
		return manhattan(v) <= r
	}
	return false
}

func chebyshev(v []int) int {
	m := 0
	for _, c := range v {
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

func manhattan(v []int) int {
	s := 0
	for _, c := range v {
		if c < 0 {
			c = -c
		}
		s += c
	}
	return s
}

func isZero(v []int) bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}
