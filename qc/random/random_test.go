package random

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/circuit-sim/circuit-sim/qc"
)

func TestGenerate_SameSeedSameCircuit(t *testing.T) {
	// GIVEN two identical specs
	spec := Spec{NQubits: 4, Depth: 50, Seed: 42, Measure: true}

	// WHEN both are generated
	a, err := Generate(spec)
	assert.NoError(t, err)
	b, err := Generate(spec)
	assert.NoError(t, err)

	// THEN the circuits are gate-for-gate identical
	assert.Equal(t, a.Queue(), b.Queue())
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	a, err := Generate(Spec{NQubits: 4, Depth: 50, Seed: 1})
	assert.NoError(t, err)
	b, err := Generate(Spec{NQubits: 4, Depth: 50, Seed: 2})
	assert.NoError(t, err)

	assert.NotEqual(t, a.Queue(), b.Queue())
}

func TestGenerate_RespectsDepthAndMeasure(t *testing.T) {
	c, err := Generate(Spec{NQubits: 3, Depth: 10, Seed: 7, Measure: true})
	assert.NoError(t, err)

	assert.Equal(t, 11, c.Size())
	last := c.Queue()[10]
	assert.True(t, last.IsMeasurement())
	assert.Equal(t, []qc.Qubit{0, 1, 2}, last.Qubits)
}

func TestGenerate_GateSetIsHonored(t *testing.T) {
	c, err := Generate(Spec{
		NQubits: 2, Depth: 30, Seed: 3,
		GateSet: []qc.GateType{qc.GateH, qc.GateCZ},
	})
	assert.NoError(t, err)

	for _, g := range c.Queue() {
		assert.Contains(t, []qc.GateType{qc.GateH, qc.GateCZ}, g.Type)
	}
}

func TestGenerate_TwoQubitGatesUseDistinctQubits(t *testing.T) {
	c, err := Generate(Spec{
		NQubits: 2, Depth: 40, Seed: 9,
		GateSet: []qc.GateType{qc.GateCNOT},
	})
	assert.NoError(t, err)

	for _, g := range c.Queue() {
		assert.NotEqual(t, g.Qubits[0], g.Qubits[1], "gate %s", g)
	}
}

func TestGenerate_Validation(t *testing.T) {
	_, err := Generate(Spec{NQubits: 0, Depth: 1, Seed: 1})
	assert.ErrorIs(t, err, qc.ErrInvalidCircuit)

	_, err = Generate(Spec{NQubits: 2, Depth: -1, Seed: 1})
	assert.ErrorIs(t, err, qc.ErrInvalidCircuit)

	_, err = Generate(Spec{NQubits: 2, Depth: 1, GateSet: []qc.GateType{"bogus"}})
	assert.ErrorIs(t, err, qc.ErrUnknownGate)

	// Measurement is variadic, not a fixed-arity circuit gate.
	_, err = Generate(Spec{NQubits: 2, Depth: 1, GateSet: []qc.GateType{qc.GateMeasure}})
	assert.ErrorIs(t, err, qc.ErrInvalidGate)

	// A two-qubit gate cannot fit a one-qubit register.
	_, err = Generate(Spec{NQubits: 1, Depth: 1, GateSet: []qc.GateType{qc.GateCNOT}})
	assert.ErrorIs(t, err, qc.ErrInvalidCircuit)
}

func TestGenerate_RotationAnglesWithinRange(t *testing.T) {
	c, err := Generate(Spec{
		NQubits: 2, Depth: 25, Seed: 11,
		GateSet: []qc.GateType{qc.GateRX, qc.GateRZ},
	})
	assert.NoError(t, err)

	for _, g := range c.Queue() {
		if assert.Len(t, g.Params, 1) {
			assert.GreaterOrEqual(t, g.Params[0], 0.0)
			assert.Less(t, g.Params[0], 6.2831853072)
		}
		assert.True(t, g.Trainable)
	}
}
