package engine

import "errors"

var (
	// ErrMissingAdapter is returned by New when no serialization adapter is
	// configured.
	ErrMissingAdapter = errors.New("engine: serialization adapter is required")
	// ErrMissingView is returned by New when no view renderer is configured.
	ErrMissingView = errors.New("engine: view is required")
	// ErrMissingCoordinator is returned by New when no drag coordinator is
	// configured.
	ErrMissingCoordinator = errors.New("engine: drag coordinator is required")
	// ErrMissingField is returned by New when no field handle is configured.
	ErrMissingField = errors.New("engine: field is required")
	// ErrIndexOutOfRange signals an index outside the current sequence. The
	// sequence, view and field are left untouched.
	ErrIndexOutOfRange = errors.New("engine: index out of range")
	// ErrDestroyed is returned by every mutation after Destroy.
	ErrDestroyed = errors.New("engine: list destroyed")
	// ErrReentrant is returned when a listener tries to mutate the list while
	// a notification is being delivered.
	ErrReentrant = errors.New("engine: mutation attempted during notification")
)
