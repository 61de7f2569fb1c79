package sortnet

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sortnet/network"
)

// Sorter sorts fixed-size slices of T with one network. It holds no mutable
// state and is safe for concurrent use on distinct slices.
type Sorter[T any] struct {
	nw  *network.Network
	cas network.CAS[T]
}

// NewSorter returns an ascending Sorter for n elements of an ordered type,
// backed by DefaultCache.
//
// Errors: those of Generate.
func NewSorter[T cmp.Ordered](n int, s Scheme) (*Sorter[T], error) {
	return newSorter(defaultCache, n, s, network.Ordered[T]())
}

// NewSorterFunc returns a Sorter ordering elements with less, backed by
// DefaultCache. less must be a strict weak order.
//
// Errors: those of Generate.
func NewSorterFunc[T any](n int, s Scheme, less func(a, b T) bool) (*Sorter[T], error) {
	return newSorter(defaultCache, n, s, network.Less(less))
}

// NewSorterCAS returns a Sorter using an explicit compare-and-swap from the
// given cache.
//
// Errors: those of Generate.
func NewSorterCAS[T any](c *Cache, n int, s Scheme, cas network.CAS[T]) (*Sorter[T], error) {
	return newSorter(c, n, s, cas)
}

func newSorter[T any](c *Cache, n int, s Scheme, cas network.CAS[T]) (*Sorter[T], error) {
	nw, err := c.Get(n, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSorter, err)
	}

	return &Sorter[T]{nw: nw, cas: cas}, nil
}

// N returns the element count the Sorter handles.
func (st *Sorter[T]) N() int { return st.nw.N() }

// Network returns the underlying network.
func (st *Sorter[T]) Network() *network.Network { return st.nw }

// Sort sorts data[:N] in place. len(data) must be ≥ N.
func (st *Sorter[T]) Sort(data []T) {
	network.Apply(data, st.cas, st.nw)
}
