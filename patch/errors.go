package patch

import "errors"

var (
	// ErrConstantPatch is returned by Normalize when every sampled intensity is
	// equal, so the standard deviation is zero. Callers should skip the patch.
	ErrConstantPatch = errors.New("patch: constant patch has zero standard deviation")

	// ErrEmptyModel is returned by Quantise when a grid location has no samples.
	ErrEmptyModel = errors.New("patch: model has no samples")

	// ErrInvalidThreshold is returned for rare-bin thresholds outside (0, 1].
	ErrInvalidThreshold = errors.New("patch: rare-bin threshold must be in (0, 1]")
)
