package chord

import "errors"

var (
	// ErrInvalidChordQuality means the quality token is not one of
	// maj, min, aug, dim, sus or 5.
	ErrInvalidChordQuality = errors.New("invalid chord quality")

	// ErrInvalidExtensionToken means an extension token is not in the
	// extension table.
	ErrInvalidExtensionToken = errors.New("invalid extension token")

	// ErrInvalidChordNote means a chord note is a rest or otherwise
	// unusable.
	ErrInvalidChordNote = errors.New("invalid chord note")

	// ErrUnclassifiedChord means the interval combination matches no
	// supported chord shape. This is a terminal outcome, not a defect.
	ErrUnclassifiedChord = errors.New("unclassified chord")
)
