package encoding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/circuit-sim/circuit-sim/qc"
)

const bellCircuitYAML = `
nqubits: 2
gates:
  - type: h
    qubits: [0]
  - type: cx
    qubits: [0, 1]
  - type: measure
    qubits: [0, 1]
`

func TestDecodeCircuit_BuildsQueueAndBookkeeping(t *testing.T) {
	// WHEN a Bell-pair document is decoded
	c, err := DecodeCircuit([]byte(bellCircuitYAML))
	assert.NoError(t, err)

	// THEN register size, queue order, and measurement bookkeeping are
	// populated
	assert.Equal(t, 2, c.NQubits())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, qc.GateH, c.Queue()[0].Type)
	assert.Equal(t, qc.GateCNOT, c.Queue()[1].Type)
	assert.Equal(t, map[string][]qc.Qubit{"register_0": {0, 1}}, c.MeasurementTuples())
}

func TestDecodeCircuit_ParametrizedGate(t *testing.T) {
	doc := `
nqubits: 1
gates:
  - type: rx
    qubits: [0]
    params: [1.5707963]
`
	c, err := DecodeCircuit([]byte(doc))
	assert.NoError(t, err)

	g := c.Queue()[0]
	assert.True(t, g.IsParametrized())
	assert.True(t, g.Trainable)
	assert.Equal(t, []float64{1.5707963}, g.Params)
}

func TestDecodeCircuit_Failures(t *testing.T) {
	// Unknown gate type.
	_, err := DecodeCircuit([]byte("nqubits: 1\ngates:\n  - type: warp\n    qubits: [0]\n"))
	assert.ErrorIs(t, err, qc.ErrUnknownGate)

	// Qubit outside the register.
	_, err = DecodeCircuit([]byte("nqubits: 1\ngates:\n  - type: h\n    qubits: [3]\n"))
	assert.ErrorIs(t, err, qc.ErrQubitOutOfRange)

	// Missing register size.
	_, err = DecodeCircuit([]byte("gates: []\n"))
	assert.ErrorIs(t, err, qc.ErrInvalidCircuit)

	// Not YAML at all.
	_, err = DecodeCircuit([]byte("nqubits: ["))
	assert.Error(t, err)
}

func TestEncodeCircuit_RoundTripsThroughDecode(t *testing.T) {
	// GIVEN a circuit with a seeded channel gate
	seed := int64(5)
	c, _ := qc.NewCircuit(2)
	assert.NoError(t, c.AddAll(
		qc.H(0),
		qc.PauliNoiseChannel(0, 0.5, 0, 0, &seed),
		qc.CNOT(0, 1),
	))

	// WHEN encoded and decoded again
	data, err := EncodeCircuit(c)
	assert.NoError(t, err)
	back, err := DecodeCircuit(data)
	assert.NoError(t, err)

	// THEN the queue survives, including the channel's seed
	assert.Equal(t, c.Size(), back.Size())
	channel := back.Queue()[1]
	assert.Equal(t, qc.GatePauliNoiseChannel, channel.Type)
	assert.Equal(t, []float64{0.5, 0, 0}, channel.Params)
	if assert.NotNil(t, channel.Seed) {
		assert.Equal(t, int64(5), *channel.Seed)
	}
}

func TestLoadAndSaveCircuit_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circuit.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(bellCircuitYAML), 0o644))

	c, err := LoadCircuit(path)
	assert.NoError(t, err)

	out := filepath.Join(dir, "copy.yaml")
	assert.NoError(t, SaveCircuit(out, c))

	back, err := LoadCircuit(out)
	assert.NoError(t, err)
	assert.Equal(t, c.Size(), back.Size())
}

func TestLoadCircuit_MissingFile(t *testing.T) {
	_, err := LoadCircuit(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
