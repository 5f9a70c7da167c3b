package theory

import "fmt"

// DefaultReferenceFrequency is the standard concert pitch for A4.
const DefaultReferenceFrequency = 440.0

// referenceHardPitch is the hard pitch of the tuning note A4 (9 + 12*4).
// Frequency computations are calibrated so that a note 57 half steps above
// C0 sounds at exactly the reference frequency.
const referenceHardPitch = 57

// The process-wide reference frequency. A single float64 assignment is the
// only mutation; a setter's effect is immediately visible to all subsequent
// frequency queries, last write wins. Call sites that need determinism
// should use FrequencyAt instead.
var referenceFrequency = DefaultReferenceFrequency

// ReferenceFrequency returns the current reference frequency for A4 in Hz.
func ReferenceFrequency() float64 {
	return referenceFrequency
}

// SetReferenceFrequency sets the reference frequency for A4, used by every
// Frequency computation thereafter. Only positive values are accepted.
func SetReferenceFrequency(hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTuningValue, hz)
	}
	referenceFrequency = hz
	return nil
}
