// Package noise implements configurable noise models for quantum
// circuits: error descriptors, the per-gate-type registration table,
// and the application engine that rewrites a noiseless circuit into a
// noisy one.
package noise

import (
	"errors"
	"fmt"

	"github.com/circuit-sim/circuit-sim/qc"
)

// ErrInvalidParameter signals a descriptor parameter outside its valid
// range. Raised only at descriptor construction; the application engine
// never re-validates stored parameters.
var ErrInvalidParameter = errors.New("invalid noise parameter")

// Error is a quantum error descriptor: an immutable parameter bundle
// that realizes a noise channel gate for a single qubit.
//
// The set of descriptors is closed. New variants must live in this
// package so that every descriptor validates its parameters at
// construction.
type Error interface {
	// Channel builds the channel gate realizing this error on q,
	// carrying the descriptor's stored parameters verbatim.
	Channel(q qc.Qubit) *qc.Gate

	noiseError()
}

// Option configures optional descriptor attributes.
type Option func(*descriptorOptions)

type descriptorOptions struct {
	seed *int64
}

// WithSeed pins the RNG seed the realized channels carry.
func WithSeed(seed int64) Option {
	return func(o *descriptorOptions) {
		s := seed
		o.seed = &s
	}
}

func applyOptions(opts []Option) descriptorOptions {
	var o descriptorOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s=%v outside [0, 1]", ErrInvalidParameter, name, p)
	}
	return nil
}

// PauliError describes depolarizing noise: independent X, Y, and Z flip
// probabilities. Realized as a Pauli noise channel.
type PauliError struct {
	px, py, pz float64
	seed       *int64
}

// NewPauliError validates px, py, pz (each in [0, 1], sum at most 1)
// and builds the descriptor.
func NewPauliError(px, py, pz float64, opts ...Option) (*PauliError, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{{"px", px}, {"py", py}, {"pz", pz}} {
		if err := checkProbability(p.name, p.value); err != nil {
			return nil, err
		}
	}
	if sum := px + py + pz; sum > 1 {
		return nil, fmt.Errorf("%w: px+py+pz=%v exceeds 1", ErrInvalidParameter, sum)
	}
	o := applyOptions(opts)
	return &PauliError{px: px, py: py, pz: pz, seed: o.seed}, nil
}

// Probabilities returns the stored flip probabilities.
func (e *PauliError) Probabilities() (px, py, pz float64) {
	return e.px, e.py, e.pz
}

// Seed returns the pinned RNG seed, or nil if unseeded.
func (e *PauliError) Seed() *int64 { return e.seed }

// Channel realizes the descriptor on q.
func (e *PauliError) Channel(q qc.Qubit) *qc.Gate {
	return qc.PauliNoiseChannel(q, e.px, e.py, e.pz, e.seed)
}

func (e *PauliError) noiseError() {}

// ThermalRelaxationError describes amplitude and phase damping over a
// gate's duration, parameterized by the relaxation times T1 and T2, the
// gate time, and the excited-state population.
type ThermalRelaxationError struct {
	t1, t2, time, excitedPopulation float64
	seed                            *int64
}

// NewThermalRelaxationError validates t1 > 0, t2 > 0, time >= 0, and
// excitedPopulation in [0, 1], and builds the descriptor.
func NewThermalRelaxationError(t1, t2, time, excitedPopulation float64, opts ...Option) (*ThermalRelaxationError, error) {
	if t1 <= 0 {
		return nil, fmt.Errorf("%w: t1=%v must be positive", ErrInvalidParameter, t1)
	}
	if t2 <= 0 {
		return nil, fmt.Errorf("%w: t2=%v must be positive", ErrInvalidParameter, t2)
	}
	if time < 0 {
		return nil, fmt.Errorf("%w: time=%v must be non-negative", ErrInvalidParameter, time)
	}
	if err := checkProbability("excited_population", excitedPopulation); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &ThermalRelaxationError{
		t1: t1, t2: t2, time: time, excitedPopulation: excitedPopulation,
		seed: o.seed,
	}, nil
}

// Params returns the stored relaxation parameters.
func (e *ThermalRelaxationError) Params() (t1, t2, time, excitedPopulation float64) {
	return e.t1, e.t2, e.time, e.excitedPopulation
}

// Seed returns the pinned RNG seed, or nil if unseeded.
func (e *ThermalRelaxationError) Seed() *int64 { return e.seed }

// Channel realizes the descriptor on q.
func (e *ThermalRelaxationError) Channel(q qc.Qubit) *qc.Gate {
	return qc.ThermalRelaxationChannel(q, e.t1, e.t2, e.time, e.excitedPopulation, e.seed)
}

func (e *ThermalRelaxationError) noiseError() {}

// ResetError describes spontaneous reset noise: p0 is the probability
// of resetting to |0>, p1 of resetting to |1>.
type ResetError struct {
	p0, p1 float64
	seed   *int64
}

// NewResetError validates p0, p1 (each in [0, 1], sum at most 1) and
// builds the descriptor.
func NewResetError(p0, p1 float64, opts ...Option) (*ResetError, error) {
	if err := checkProbability("p0", p0); err != nil {
		return nil, err
	}
	if err := checkProbability("p1", p1); err != nil {
		return nil, err
	}
	if sum := p0 + p1; sum > 1 {
		return nil, fmt.Errorf("%w: p0+p1=%v exceeds 1", ErrInvalidParameter, sum)
	}
	o := applyOptions(opts)
	return &ResetError{p0: p0, p1: p1, seed: o.seed}, nil
}

// Probabilities returns the stored reset probabilities.
func (e *ResetError) Probabilities() (p0, p1 float64) {
	return e.p0, e.p1
}

// Seed returns the pinned RNG seed, or nil if unseeded.
func (e *ResetError) Seed() *int64 { return e.seed }

// Channel realizes the descriptor on q.
func (e *ResetError) Channel(q qc.Qubit) *qc.Gate {
	return qc.ResetChannel(q, e.p0, e.p1, e.seed)
}

func (e *ResetError) noiseError() {}
