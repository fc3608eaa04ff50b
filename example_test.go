package imagematch_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/imagematch"
	"github.com/hupe1980/imagematch/patch"
	"github.com/hupe1980/imagematch/testutil"
)

// Example_train demonstrates training a point from perturbed views.
func Example_train() {
	rng := testutil.NewRNG(1)
	ref := rng.NoiseImage(64, 64)

	var sources []patch.PixelSource
	for i := range 20 {
		sources = append(sources, patch.GraySource{Image: rng.Perturb(ref, 1, float64(i), 2)})
	}
	views := imagematch.ViewsOf(sources, 32, 32)
	views = append(views, imagematch.View{Source: patch.GraySource{Image: ref}, X: 60, Y: 32})

	res, err := imagematch.NewTrainer(imagematch.WithWorkers(4)).Train(context.Background(), views)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("accepted:", res.Accepted)
	fmt.Println("out of bounds:", res.OutOfBounds.ToArray())
	fmt.Println("model bits:", res.Descriptor.Bits())
	// Output:
	// accepted: 20
	// out of bounds: [20]
	// model bits: 256
}

// Example_score demonstrates scoring a query point against a descriptor.
func Example_score() {
	frame := testutil.NewRNG(2).NoiseImage(32, 32)

	// A model where the first intensity bin is rare everywhere.
	m := imagematch.NewMatcher(patch.Descriptor{^uint64(0)})

	score, err := m.Score(patch.NewSource(frame), 16, 16)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("score:", score)

	_, err = m.Score(patch.NewSource(frame), 2, 16)
	fmt.Println("skip:", imagematch.IsSkip(err))
	// Output:
	// score: 64
	// skip: true
}
