package theory

import "errors"

// Validation errors are returned at construction, or at the first query that
// needs a value the note was built without. They are all matchable with
// errors.Is.
var (
	ErrInvalidNoteName    = errors.New("invalid note name")
	ErrInvalidOctave      = errors.New("invalid octave")
	ErrInvalidRhythmIndex = errors.New("rhythm index must be an integer between 0 and 10")
	ErrInvalidDotCount    = errors.New("dot count must be a positive integer or 0")
	ErrInvalidTripletFlag = errors.New("triplet flag must be a boolean")

	ErrMissingOctave       = errors.New("note has no octave value")
	ErrRestHasNoEnharmonic = errors.New("a rest has no enharmonic spelling")
	ErrRestHasNoPitch      = errors.New("a rest has no pitch")

	ErrInvalidIntervalQuality                = errors.New("interval quality must be maj, min, per, aug[N] or dim[N]")
	ErrInvalidIntervalBaseQualityCombination = errors.New("invalid base/quality combination")
	ErrInvalidDisplacement                   = errors.New("octave displacement must be a positive integer or 0")

	ErrInvalidTuningValue = errors.New("reference frequency must be a positive number")
)
