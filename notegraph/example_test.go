package notegraph_test

import (
	"fmt"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
)

// ExampleNew builds the default seven-note transition graph with a constant
// weight, so every transition is equally likely.
//
// Scenario:
//
//	A complete digraph over C..B — 49 edges including self-loops — is the
//	universe a melody walk moves through. Constant weights make the
//	structure easy to inspect; uniform random weights (the default) are
//	what generation sessions actually use.
func ExampleNew() {
	g, err := notegraph.New(notegraph.WithWeightFn(notegraph.ConstantWeightFn(0.5)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w, _ := g.Weight("C", "G")
	fmt.Println(g.Order(), g.EdgeCount())
	fmt.Println(w)
	// Output:
	// 7 49
	// 0.5
}

// ExampleGraph_WeightsFrom queries one symbol's outgoing distribution.
func ExampleGraph_WeightsFrom() {
	g, err := notegraph.New(
		notegraph.WithAlphabet([]notegraph.Pitch{"C", "E", "G"}),
		notegraph.WithWeightFn(notegraph.ConstantWeightFn(1)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	weights, _ := g.WeightsFrom("E")
	fmt.Println(len(weights), weights["C"], weights["E"], weights["G"])
	// Output:
	// 3 1 1 1
}
