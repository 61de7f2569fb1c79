package generate_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/sortnet/generate"
	"github.com/katalvlaran/sortnet/network"
)

func BenchmarkGenerate(b *testing.B) {
	for _, g := range generators() {
		b.Run(g.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := g.gen(16); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSort16 compares each network on 16 ints with slices.Sort.
func BenchmarkSort16(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int, 16)
	for i := range src {
		src[i] = rng.Int()
	}
	data := make([]int, 16)

	for _, g := range generators() {
		nw, err := g.gen(16)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(g.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, src)
				network.Sort(data, nw)
			}
		})
	}
	b.Run("slices.Sort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			copy(data, src)
			slices.Sort(data)
		}
	})
}

func BenchmarkVerify(b *testing.B) {
	nw, err := generate.SizeOptimized(16)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if err := network.Verify(nw); err != nil {
			b.Fatal(err)
		}
	}
}
