// Package imagematch trains and matches robust local patch models around
// interest points, after Taylor & Drummond, "Robust feature matching in 2.3µs".
//
// The algorithm lives in package patch. This package wires it into a
// parallel Trainer and a Matcher with structured logging and metrics.
//
// # Training
//
// A point is trained from many views of it, typically warped copies of a
// reference image. Views too close to the border or with a constant patch are
// skipped and reported:
//
//	views := imagematch.ViewsOf(warped, x, y)
//	trainer := imagematch.NewTrainer(imagematch.WithWorkers(8))
//	res, err := trainer.Train(ctx, views)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Accepted, res.OutOfBounds.GetCardinality())
//
// # Matching
//
//	m := imagematch.NewMatcher(res.Descriptor)
//	score, err := m.Score(patch.NewSource(frame), qx, qy)
//	if imagematch.IsSkip(err) {
//	    // point cannot be scored in this frame
//	}
//
// Scores range from 0 to 320. Lower is a better match.
//
// # Observability
//
//	metrics := &imagematch.BasicMetricsCollector{}
//	trainer := imagematch.NewTrainer(
//	    imagematch.WithLogger(imagematch.NewJSONLogger(slog.LevelInfo)),
//	    imagematch.WithMetricsCollector(metrics),
//	)
package imagematch
