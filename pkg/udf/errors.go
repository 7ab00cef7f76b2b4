package udf

import "errors"

var (
	// ErrArity indicates the wrong number of arguments was supplied.
	ErrArity = errors.New("wrong number of arguments")

	// ErrInvalidArgument indicates an argument with the wrong type, shape,
	// or an unexpected NULL.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeIndex indicates a negative capture-group index.
	ErrNegativeIndex = errors.New("group index must be non-negative")

	// ErrGroupRange indicates a capture-group index beyond the pattern's
	// group count. Structural: it fails the whole batch.
	ErrGroupRange = errors.New("group index out of range")

	// ErrNotRegistered indicates a lookup for an unknown function name.
	ErrNotRegistered = errors.New("function not registered")

	// ErrAlreadyRegistered indicates a duplicate function registration.
	ErrAlreadyRegistered = errors.New("function already registered")
)
