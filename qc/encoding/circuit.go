// Package encoding defines the YAML formats for circuits and noise
// models and converts between them and the in-memory types.
package encoding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/circuit-sim/circuit-sim/qc"
)

// CircuitSpec is the top-level circuit document.
//
//	nqubits: 2
//	gates:
//	  - type: h
//	    qubits: [0]
//	  - type: rx
//	    qubits: [1]
//	    params: [0.5]
type CircuitSpec struct {
	NQubits int        `yaml:"nqubits"`
	Gates   []GateSpec `yaml:"gates"`
}

// GateSpec is one queue entry in a circuit document.
type GateSpec struct {
	Type   string    `yaml:"type"`
	Qubits []int     `yaml:"qubits"`
	Params []float64 `yaml:"params,omitempty"`
	Seed   *int64    `yaml:"seed,omitempty"`
}

// DecodeCircuit parses a YAML circuit document and builds the circuit.
// Every gate passes through Circuit.Add, so unknown types, arity
// mismatches, and out-of-range qubits fail with positional context.
func DecodeCircuit(data []byte) (*qc.Circuit, error) {
	var spec CircuitSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing circuit spec: %w", err)
	}
	c, err := qc.NewCircuit(spec.NQubits)
	if err != nil {
		return nil, err
	}
	for i, gs := range spec.Gates {
		g := &qc.Gate{
			Type:   qc.GateType(gs.Type),
			Qubits: intsToQubits(gs.Qubits),
			Params: gs.Params,
			Seed:   gs.Seed,
		}
		g.Trainable = g.IsParametrized()
		if err := c.Add(g); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return c, nil
}

// LoadCircuit reads and decodes a circuit document from path.
func LoadCircuit(path string) (*qc.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit spec: %w", err)
	}
	c, err := DecodeCircuit(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// EncodeCircuit renders a circuit as a YAML document.
func EncodeCircuit(c *qc.Circuit) ([]byte, error) {
	spec := CircuitSpec{NQubits: c.NQubits()}
	for _, g := range c.Queue() {
		spec.Gates = append(spec.Gates, GateSpec{
			Type:   string(g.Type),
			Qubits: qubitsToInts(g.Qubits),
			Params: g.Params,
			Seed:   g.Seed,
		})
	}
	return yaml.Marshal(&spec)
}

// SaveCircuit writes the circuit document to path.
func SaveCircuit(path string, c *qc.Circuit) error {
	data, err := EncodeCircuit(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing circuit spec: %w", err)
	}
	return nil
}

func intsToQubits(values []int) []qc.Qubit {
	out := make([]qc.Qubit, len(values))
	for i, v := range values {
		out[i] = qc.Qubit(v)
	}
	return out
}

func qubitsToInts(qubits []qc.Qubit) []int {
	out := make([]int, len(qubits))
	for i, q := range qubits {
		out[i] = int(q)
	}
	return out
}
