package notegraph_test

import (
	"fmt"
	"testing"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
)

// BenchmarkNew measures construction cost across alphabet sizes.
func BenchmarkNew(b *testing.B) {
	for _, n := range []int{7, 32, 128} {
		alphabet := make([]notegraph.Pitch, n)
		for i := range alphabet {
			alphabet[i] = notegraph.Pitch(fmt.Sprintf("p%d", i))
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := notegraph.New(notegraph.WithAlphabet(alphabet), notegraph.WithSeed(1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkWeightsFrom measures the per-query copy cost the walker pays.
func BenchmarkWeightsFrom(b *testing.B) {
	g, err := notegraph.New(notegraph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.WeightsFrom("C"); err != nil {
			b.Fatal(err)
		}
	}
}
