package qc

import (
	"fmt"
	"strings"
)

// Qubit is the index of one addressable qubit in a circuit.
type Qubit int

// GateType is the stable identity of a gate kind. It keys noise
// registrations and drives arity validation, so two gates of the same
// kind always compare equal on Type.
type GateType string

// Standard gate identities.
const (
	GateH       GateType = "h"
	GateX       GateType = "x"
	GateY       GateType = "y"
	GateZ       GateType = "z"
	GateS       GateType = "s"
	GateT       GateType = "t"
	GateRX      GateType = "rx"
	GateRY      GateType = "ry"
	GateRZ      GateType = "rz"
	GateU1      GateType = "u1"
	GateCNOT    GateType = "cx"
	GateCZ      GateType = "cz"
	GateSWAP    GateType = "swap"
	GateTOFFOLI GateType = "ccx"
	GateMeasure GateType = "measure"
)

// Noise channel identities. Channels act on exactly one qubit and carry
// the realizing descriptor's parameters verbatim.
const (
	GatePauliNoiseChannel        GateType = "pauli_noise_channel"
	GateThermalRelaxationChannel GateType = "thermal_relaxation_channel"
	GateResetChannel             GateType = "reset_channel"
)

// VariadicQubits marks a gate type that accepts any positive number of
// qubits (currently only measurement).
const VariadicQubits = -1

// GateArity describes the shape of a gate type: how many qubits it acts
// on (VariadicQubits for one-or-more) and how many parameters it carries.
type GateArity struct {
	NumQubits int
	NumParams int
}

var gateArities = map[GateType]GateArity{
	GateH:       {NumQubits: 1},
	GateX:       {NumQubits: 1},
	GateY:       {NumQubits: 1},
	GateZ:       {NumQubits: 1},
	GateS:       {NumQubits: 1},
	GateT:       {NumQubits: 1},
	GateRX:      {NumQubits: 1, NumParams: 1},
	GateRY:      {NumQubits: 1, NumParams: 1},
	GateRZ:      {NumQubits: 1, NumParams: 1},
	GateU1:      {NumQubits: 1, NumParams: 1},
	GateCNOT:    {NumQubits: 2},
	GateCZ:      {NumQubits: 2},
	GateSWAP:    {NumQubits: 2},
	GateTOFFOLI: {NumQubits: 3},
	GateMeasure: {NumQubits: VariadicQubits},

	GatePauliNoiseChannel:        {NumQubits: 1, NumParams: 3},
	GateThermalRelaxationChannel: {NumQubits: 1, NumParams: 4},
	GateResetChannel:             {NumQubits: 1, NumParams: 2},
}

// Arity returns the declared shape of a gate type. The second return is
// false for gate types the circuit model does not know.
func Arity(t GateType) (GateArity, bool) {
	a, ok := gateArities[t]
	return a, ok
}

// KnownGateTypes returns every gate type the circuit model accepts.
// The result is a fresh slice in unspecified order.
func KnownGateTypes() []GateType {
	types := make([]GateType, 0, len(gateArities))
	for t := range gateArities {
		types = append(types, t)
	}
	return types
}

// Gate is one step in a circuit's queue: a type identity, the qubits it
// acts on in application order, and optional parameters. Gates are plain
// values; nothing in this module mutates a gate after construction.
type Gate struct {
	Type   GateType
	Qubits []Qubit
	Params []float64

	// Seed pins the RNG stream of a stochastic channel. nil = unseeded.
	// Stored verbatim from the realizing descriptor; never interpreted
	// by the circuit model.
	Seed *int64

	// Trainable marks parametrized gates whose parameters participate
	// in optimization. Channels are parametrized but never trainable.
	Trainable bool
}

// H returns a Hadamard gate on q.
func H(q Qubit) *Gate { return &Gate{Type: GateH, Qubits: []Qubit{q}} }

// X returns a Pauli-X gate on q.
func X(q Qubit) *Gate { return &Gate{Type: GateX, Qubits: []Qubit{q}} }

// Y returns a Pauli-Y gate on q.
func Y(q Qubit) *Gate { return &Gate{Type: GateY, Qubits: []Qubit{q}} }

// Z returns a Pauli-Z gate on q.
func Z(q Qubit) *Gate { return &Gate{Type: GateZ, Qubits: []Qubit{q}} }

// S returns a phase gate on q.
func S(q Qubit) *Gate { return &Gate{Type: GateS, Qubits: []Qubit{q}} }

// T returns a pi/8 gate on q.
func T(q Qubit) *Gate { return &Gate{Type: GateT, Qubits: []Qubit{q}} }

// RX returns an X-rotation on q by theta radians. Rotations are
// trainable by default.
func RX(q Qubit, theta float64) *Gate {
	return &Gate{Type: GateRX, Qubits: []Qubit{q}, Params: []float64{theta}, Trainable: true}
}

// RY returns a Y-rotation on q by theta radians.
func RY(q Qubit, theta float64) *Gate {
	return &Gate{Type: GateRY, Qubits: []Qubit{q}, Params: []float64{theta}, Trainable: true}
}

// RZ returns a Z-rotation on q by theta radians.
func RZ(q Qubit, theta float64) *Gate {
	return &Gate{Type: GateRZ, Qubits: []Qubit{q}, Params: []float64{theta}, Trainable: true}
}

// U1 returns a phase rotation on q by theta radians.
func U1(q Qubit, theta float64) *Gate {
	return &Gate{Type: GateU1, Qubits: []Qubit{q}, Params: []float64{theta}, Trainable: true}
}

// CNOT returns a controlled-X gate.
func CNOT(control, target Qubit) *Gate {
	return &Gate{Type: GateCNOT, Qubits: []Qubit{control, target}}
}

// CZ returns a controlled-Z gate.
func CZ(control, target Qubit) *Gate {
	return &Gate{Type: GateCZ, Qubits: []Qubit{control, target}}
}

// SWAP returns a swap gate on a and b.
func SWAP(a, b Qubit) *Gate {
	return &Gate{Type: GateSWAP, Qubits: []Qubit{a, b}}
}

// TOFFOLI returns a doubly-controlled X gate.
func TOFFOLI(control1, control2, target Qubit) *Gate {
	return &Gate{Type: GateTOFFOLI, Qubits: []Qubit{control1, control2, target}}
}

// Measure returns a measurement gate on the given qubits (at least one).
func Measure(qubits ...Qubit) *Gate {
	return &Gate{Type: GateMeasure, Qubits: qubits}
}

// PauliNoiseChannel returns a Pauli noise channel on q with flip
// probabilities (px, py, pz). seed may be nil.
func PauliNoiseChannel(q Qubit, px, py, pz float64, seed *int64) *Gate {
	return &Gate{
		Type:   GatePauliNoiseChannel,
		Qubits: []Qubit{q},
		Params: []float64{px, py, pz},
		Seed:   seed,
	}
}

// ThermalRelaxationChannel returns a thermal relaxation channel on q
// with relaxation times t1 and t2, gate time, and excited-state
// population. seed may be nil.
func ThermalRelaxationChannel(q Qubit, t1, t2, time, excitedPopulation float64, seed *int64) *Gate {
	return &Gate{
		Type:   GateThermalRelaxationChannel,
		Qubits: []Qubit{q},
		Params: []float64{t1, t2, time, excitedPopulation},
		Seed:   seed,
	}
}

// ResetChannel returns a reset channel on q with reset probabilities
// (p0, p1). seed may be nil.
func ResetChannel(q Qubit, p0, p1 float64, seed *int64) *Gate {
	return &Gate{
		Type:   GateResetChannel,
		Qubits: []Qubit{q},
		Params: []float64{p0, p1},
		Seed:   seed,
	}
}

// IsChannel reports whether the gate is a noise channel.
func (g *Gate) IsChannel() bool {
	switch g.Type {
	case GatePauliNoiseChannel, GateThermalRelaxationChannel, GateResetChannel:
		return true
	}
	return false
}

// IsMeasurement reports whether the gate is a measurement.
func (g *Gate) IsMeasurement() bool {
	return g.Type == GateMeasure
}

// IsParametrized reports whether the gate carries tunable parameters.
// Channels carry fixed noise parameters and are not parametrized in
// this sense.
func (g *Gate) IsParametrized() bool {
	return len(g.Params) > 0 && !g.IsChannel()
}

func (g *Gate) String() string {
	var sb strings.Builder
	sb.WriteString(string(g.Type))
	sb.WriteString("[")
	for i, q := range g.Qubits {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", q)
	}
	sb.WriteString("]")
	return sb.String()
}
