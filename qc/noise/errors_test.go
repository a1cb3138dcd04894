package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/circuit-sim/circuit-sim/qc"
)

func TestNewPauliError_ValidatesProbabilities(t *testing.T) {
	cases := []struct {
		name       string
		px, py, pz float64
	}{
		{"px below range", -0.1, 0, 0},
		{"py above range", 0, 1.1, 0},
		{"pz above range", 0, 0, 2},
		{"sum exceeds one", 0.5, 0.4, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPauliError(tc.px, tc.py, tc.pz)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}

	e, err := NewPauliError(0.1, 0.2, 0.3)
	assert.NoError(t, err)
	px, py, pz := e.Probabilities()
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, []float64{px, py, pz})
}

func TestNewThermalRelaxationError_ValidatesParameters(t *testing.T) {
	_, err := NewThermalRelaxationError(0, 50, 0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewThermalRelaxationError(100, -1, 0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewThermalRelaxationError(100, 50, -0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewThermalRelaxationError(100, 50, 0.1, 1.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	e, err := NewThermalRelaxationError(100, 50, 0.1, 0.02)
	assert.NoError(t, err)
	t1, t2, time, pop := e.Params()
	assert.Equal(t, []float64{100, 50, 0.1, 0.02}, []float64{t1, t2, time, pop})
}

func TestNewResetError_ValidatesProbabilities(t *testing.T) {
	_, err := NewResetError(-0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewResetError(0, 1.2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewResetError(0.7, 0.7)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	e, err := NewResetError(0.3, 0.4)
	assert.NoError(t, err)
	p0, p1 := e.Probabilities()
	assert.Equal(t, 0.3, p0)
	assert.Equal(t, 0.4, p1)
}

func TestChannel_RealizesStoredParametersOnGivenQubit(t *testing.T) {
	// GIVEN descriptors of each variant
	pauli, _ := NewPauliError(0.1, 0.2, 0.3, WithSeed(7))
	thermal, _ := NewThermalRelaxationError(100, 50, 0.1, 0.02)
	reset, _ := NewResetError(0.3, 0.4)

	// WHEN each is realized for a qubit
	pg := pauli.Channel(2)
	tg := thermal.Channel(0)
	rg := reset.Channel(1)

	// THEN each channel gate carries the stored parameters verbatim
	assert.Equal(t, qc.GatePauliNoiseChannel, pg.Type)
	assert.Equal(t, []qc.Qubit{2}, pg.Qubits)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, pg.Params)
	if assert.NotNil(t, pg.Seed) {
		assert.Equal(t, int64(7), *pg.Seed)
	}

	assert.Equal(t, qc.GateThermalRelaxationChannel, tg.Type)
	assert.Equal(t, []float64{100, 50, 0.1, 0.02}, tg.Params)
	assert.Nil(t, tg.Seed)

	assert.Equal(t, qc.GateResetChannel, rg.Type)
	assert.Equal(t, []float64{0.3, 0.4}, rg.Params)
}

func TestChannel_EachRealizationIsAFreshGate(t *testing.T) {
	pauli, _ := NewPauliError(0.1, 0, 0)
	first := pauli.Channel(0)
	second := pauli.Channel(0)
	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}
