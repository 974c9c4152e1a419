package mipmap

import "errors"

// Errors reported by the generators. All of them are detected before any
// command is recorded, so a failed Generate leaves the encoder unmodified.
// Match with errors.Is; the returned errors carry additional context.
var (
	// ErrUnsupportedUsage is returned when the texture usage flags do not
	// satisfy the precondition of the chosen backend.
	ErrUnsupportedUsage = errors.New("unsupported texture usage")

	// ErrUnsupportedFormat is returned when a format is recognized but has
	// no kernel for the requested strategy.
	ErrUnsupportedFormat = errors.New("unsupported texture format")

	// ErrUnknownFormat is returned for formats outside the recognized set.
	ErrUnknownFormat = errors.New("unknown texture format")

	// ErrUnsupportedDimension is returned for non-2D textures.
	ErrUnsupportedDimension = errors.New("unsupported texture dimension")

	// ErrNonPowerOfTwo is returned by the compute backend for textures whose
	// width or height is not a power of two.
	ErrNonPowerOfTwo = errors.New("texture size is not a power of two")

	// ErrNoApplicableBackend is returned by the recommended generator when
	// the descriptor usage satisfies no backend at all.
	ErrNoApplicableBackend = errors.New("no backend applies to the texture usage")
)
