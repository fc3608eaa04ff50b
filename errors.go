package imagematch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/imagematch/patch"
)

var (
	// ErrNoViews is returned when Train is called without views.
	ErrNoViews = errors.New("no training views")

	// ErrNoSamples is returned when every training view was rejected.
	ErrNoSamples = errors.New("no usable training samples")

	// ErrNilSource is returned for a view without a pixel source.
	ErrNilSource = errors.New("view has no pixel source")

	// ErrOutOfBounds is returned when the sampling window around a point
	// leaves the image. The point should be skipped.
	ErrOutOfBounds = errors.New("point too close to image border")

	// ErrDegeneratePatch is returned when a patch cannot be normalised
	// because all its intensities are equal. The point should be skipped.
	ErrDegeneratePatch = errors.New("degenerate patch")

	// ErrInvalidThreshold is returned when the configured rare-bin
	// threshold is outside (0, 1].
	ErrInvalidThreshold = errors.New("invalid rare-bin threshold")
)

// ViewError reports which training view caused a failure.
//
// The original underlying error can be accessed via errors.Unwrap.
type ViewError struct {
	Index int
	cause error
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("view %d: %v", e.Index, e.cause)
}

func (e *ViewError) Unwrap() error { return e.cause }

// IsSkip reports whether err only means that a point cannot be sampled,
// as opposed to a failure.
func IsSkip(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrDegeneratePatch)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, patch.ErrConstantPatch):
		return fmt.Errorf("%w: %w", ErrDegeneratePatch, err)
	case errors.Is(err, patch.ErrEmptyModel):
		return fmt.Errorf("%w: %w", ErrNoSamples, err)
	case errors.Is(err, patch.ErrInvalidThreshold):
		return fmt.Errorf("%w: %w", ErrInvalidThreshold, err)
	}

	return err
}
