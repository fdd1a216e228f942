package walker_test

import (
	"fmt"
	"testing"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
	"github.com/VanishaParwal/MusicAlgorithm/walker"
)

// BenchmarkWalk measures walk cost across melody lengths on the default
// seven-note graph.
func BenchmarkWalk(b *testing.B) {
	g, err := notegraph.New(notegraph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	for _, length := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("length=%d", length), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := walker.Walk(g, walker.Length(length), walker.WithSeed(int64(i)+1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
