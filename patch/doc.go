// Package patch implements the robust 8×8 patch model used for feature matching
// in Taylor & Drummond, "Robust feature matching in 2.3µs".
//
// # Pipeline
//
//	image + point ─► Sample ─► Raw ─► Normalize ─► Normalized
//	                                                  │
//	               training: Model.AddSample ◄────────┤
//	               query:    EncodePatch ◄────────────┘
//
// A trained Model keeps, for each of the 64 grid locations, a 5-bin histogram
// of normalised intensities. Quantise reduces it to a Descriptor: bit h of word
// i is set when fewer than 5% of the samples at location h fell into bin i.
// Discrepancy counts the locations where a query lands in such a rare bin.
//
// # Usage
//
//	var m patch.Model
//	for _, v := range views {
//	    raw, ok := patch.Sample(v.Source, v.X, v.Y)
//	    if !ok {
//	        continue // too close to the border
//	    }
//	    n, err := patch.Normalize(raw)
//	    if err != nil {
//	        continue // constant patch
//	    }
//	    m.AddSample(n)
//	}
//	model, err := m.Quantise()
//
//	query := patch.EncodePatch(normalizedQuery)
//	score := patch.Discrepancy(query, model)
//
// # Concurrency
//
// Sample, Normalize, EncodePatch and Discrepancy are pure. A Model is not safe
// for concurrent mutation: train one Model per goroutine and combine them with
// Merge, or share a SyncModel.
package patch
