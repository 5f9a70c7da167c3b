package scale

import "errors"

var (
	// ErrInvalidModeName means the requested mode is not in the registry.
	ErrInvalidModeName = errors.New("invalid mode name")

	// ErrInvalidModeRoot means the mode root is not a pitched note.
	ErrInvalidModeRoot = errors.New("invalid mode root")

	// ErrInvalidDefinition means a mode definition failed validation.
	ErrInvalidDefinition = errors.New("invalid mode definition")
)
