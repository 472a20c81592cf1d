// Package arch defines the hierarchical architecture data model: addresses,
// ports, links, components and the addressed TopLevel root.
package arch

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is an N-dimensional integer tuple identifying a tile in a
// TopLevel. Dimensionality is fixed once an Address is constructed and is
// expected to be uniform across a single architecture.
type Address []int

// NewAddress builds an Address from the given coordinates.
func NewAddress(coords ...int) Address {
	a := make(Address, len(coords))
	copy(a, coords)
	return a
}

// Dim returns the dimensionality of the address.
func (a Address) Dim() int {
	return len(a)
}

// Equal reports whether two addresses have identical coordinates.
func (a Address) Equal(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Add returns the componentwise sum of two addresses.
func (a Address) Add(b Address) Address {
	return a.combine(b, func(x, y int) int { return x + y })
}

// Sub returns the componentwise difference a-b.
func (a Address) Sub(b Address) Address {
	return a.combine(b, func(x, y int) int { return x - y })
}

// Min returns the componentwise minimum of two addresses.
func (a Address) Min(b Address) Address {
	return a.combine(b, func(x, y int) int {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the componentwise maximum of two addresses.
func (a Address) Max(b Address) Address {
	return a.combine(b, func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
}

func (a Address) combine(b Address, f func(int, int) int) Address {
	if len(a) != len(b) {
		panic("arch: address dimensionality mismatch")
	}
	out := make(Address, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

// ChebyshevDistance returns the L-infinity (max-coordinate-delta) distance
// between two addresses, the metric used by the move generator's radius
// ball.
func (a Address) ChebyshevDistance(b Address) int {
	if len(a) != len(b) {
		panic("arch: address dimensionality mismatch")
	}
	max := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// ManhattanDistance returns the L1 distance between two addresses.
func (a Address) ManhattanDistance(b Address) int {
	if len(a) != len(b) {
		panic("arch: address dimensionality mismatch")
	}
	sum := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Key returns a stable, comparable string encoding of the address, suitable
// for use as a map key.
func (a Address) Key() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("(%s)", a.Key())
}

// Clone returns a copy of the address.
func (a Address) Clone() Address {
	out := make(Address, len(a))
	copy(out, a)
	return out
}
