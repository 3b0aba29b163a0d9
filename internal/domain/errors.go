package domain

import "errors"

// Error taxonomy (sentinels). Only two are fatal to an evaluation:
// ErrUnsupportedFormat/ErrExtractionFailed (C1) and ErrInvalidWeights (C6).
// ErrBackendUnavailable is recovered locally by the stage that raised it.
var (
	// ErrUnsupportedFormat is raised by C1 when the MIME type is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrExtractionFailed is raised by C1 when no text could be recovered.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrInvalidWeights is raised by C6 when supplied weights do not sum to ~1.0.
	ErrInvalidWeights = errors.New("invalid weights")
	// ErrBackendUnavailable is raised by C4/C5/C7 when an optional backend is
	// absent; callers recover by skipping the corresponding strategy.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
