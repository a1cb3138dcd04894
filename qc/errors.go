package qc

import "errors"

var (
	// ErrInvalidCircuit signals an unusable circuit construction
	// parameter, such as a non-positive qubit count.
	ErrInvalidCircuit = errors.New("invalid circuit")

	// ErrUnknownGate signals a gate type with no arity entry. The noise
	// registration table accepts arbitrary gate types as keys; circuits
	// do not accept them as queue entries.
	ErrUnknownGate = errors.New("unknown gate type")

	// ErrInvalidGate signals a gate whose qubit or parameter list does
	// not match its declared arity, or that repeats a qubit.
	ErrInvalidGate = errors.New("invalid gate")

	// ErrQubitOutOfRange signals a qubit index outside [0, nqubits).
	ErrQubitOutOfRange = errors.New("qubit out of range")
)
