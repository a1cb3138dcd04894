package qc

import (
	"fmt"
	"strings"
)

// Circuit is an ordered sequence of gates over a fixed qubit register.
//
// The queue is append-only: gates enter through Add, which validates
// them against the register size and the gate-type arity table and
// maintains the parametrized/trainable/measurement bookkeeping. A
// circuit never mutates the gates it holds, so gate values may be
// shared between circuits.
type Circuit struct {
	nqubits int
	queue   []*Gate

	parametrized      []*Gate
	trainable         []*Gate
	measurementTuples map[string][]Qubit
	measurementGate   *Gate
}

// NewCircuit creates an empty circuit over nqubits qubits.
func NewCircuit(nqubits int) (*Circuit, error) {
	if nqubits <= 0 {
		return nil, fmt.Errorf("%w: nqubits must be positive, got %d", ErrInvalidCircuit, nqubits)
	}
	return &Circuit{
		nqubits:           nqubits,
		measurementTuples: make(map[string][]Qubit),
	}, nil
}

// NQubits returns the register size the circuit was built with.
func (c *Circuit) NQubits() int {
	return c.nqubits
}

// EmptyLike returns a new empty circuit with the same construction
// parameters as c.
func (c *Circuit) EmptyLike() *Circuit {
	out, _ := NewCircuit(c.nqubits)
	return out
}

// Add validates g and appends it to the queue.
//
// Validation covers: known gate type, qubit count and parameter count
// per the arity table, qubit indices within [0, nqubits), and no
// repeated qubits. Bookkeeping side effects on success: parametrized
// and trainable gates are indexed, and a measurement gate claims the
// next measurement register (keyed "register_N") and becomes the
// circuit's measurement gate.
func (c *Circuit) Add(g *Gate) error {
	if g == nil {
		return fmt.Errorf("%w: nil gate", ErrInvalidGate)
	}
	arity, ok := Arity(g.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGate, g.Type)
	}
	if arity.NumQubits == VariadicQubits {
		if len(g.Qubits) == 0 {
			return fmt.Errorf("%w: %s needs at least one qubit", ErrInvalidGate, g.Type)
		}
	} else if len(g.Qubits) != arity.NumQubits {
		return fmt.Errorf("%w: %s acts on %d qubits, got %d",
			ErrInvalidGate, g.Type, arity.NumQubits, len(g.Qubits))
	}
	if len(g.Params) != arity.NumParams {
		return fmt.Errorf("%w: %s takes %d parameters, got %d",
			ErrInvalidGate, g.Type, arity.NumParams, len(g.Params))
	}
	seen := make(map[Qubit]struct{}, len(g.Qubits))
	for _, q := range g.Qubits {
		if q < 0 || int(q) >= c.nqubits {
			return fmt.Errorf("%w: qubit %d outside [0, %d) for gate %s",
				ErrQubitOutOfRange, q, c.nqubits, g.Type)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("%w: %s repeats qubit %d", ErrInvalidGate, g.Type, q)
		}
		seen[q] = struct{}{}
	}

	c.queue = append(c.queue, g)
	if g.IsParametrized() {
		c.parametrized = append(c.parametrized, g)
		if g.Trainable {
			c.trainable = append(c.trainable, g)
		}
	}
	if g.IsMeasurement() {
		register := fmt.Sprintf("register_%d", len(c.measurementTuples))
		c.measurementTuples[register] = append([]Qubit(nil), g.Qubits...)
		c.measurementGate = g
	}
	return nil
}

// AddAll adds gates in order, stopping at the first failure.
func (c *Circuit) AddAll(gates ...*Gate) error {
	for i, g := range gates {
		if err := c.Add(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

// Queue returns the circuit's gates in application order. The returned
// slice is the queue's internal storage -- callers may iterate over it
// but MUST NOT append to or reslice it.
func (c *Circuit) Queue() []*Gate {
	return c.queue
}

// Size returns the number of gates in the queue.
func (c *Circuit) Size() int {
	return len(c.queue)
}

// ParametrizedGates returns the parametrized gates in queue order.
// Same aliasing rules as Queue.
func (c *Circuit) ParametrizedGates() []*Gate {
	return c.parametrized
}

// TrainableGates returns the trainable gates in queue order.
// Same aliasing rules as Queue.
func (c *Circuit) TrainableGates() []*Gate {
	return c.trainable
}

// MeasurementTuples returns the measurement register map
// (register name -> measured qubits). Same aliasing rules as Queue.
func (c *Circuit) MeasurementTuples() map[string][]Qubit {
	return c.measurementTuples
}

// MeasurementGate returns the most recently added measurement gate,
// or nil if the circuit has none.
func (c *Circuit) MeasurementGate() *Gate {
	return c.measurementGate
}

// AdoptMetadata overwrites c's bookkeeping with copies of src's:
// parametrized and trainable gate lists, measurement tuples, and the
// measurement gate reference. The queue is untouched. Used by consumers
// that rebuild a circuit gate-by-gate and must carry the source
// circuit's bookkeeping through verbatim.
func (c *Circuit) AdoptMetadata(src *Circuit) {
	c.parametrized = append([]*Gate(nil), src.parametrized...)
	c.trainable = append([]*Gate(nil), src.trainable...)
	c.measurementTuples = make(map[string][]Qubit, len(src.measurementTuples))
	for register, qubits := range src.measurementTuples {
		c.measurementTuples[register] = append([]Qubit(nil), qubits...)
	}
	c.measurementGate = src.measurementGate
}

// Depth returns the number of parallel moments in the circuit: gates
// sharing no qubit may share a moment.
func (c *Circuit) Depth() int {
	frontier := make(map[Qubit]int, c.nqubits)
	depth := 0
	for _, g := range c.queue {
		moment := 0
		for _, q := range g.Qubits {
			if frontier[q] > moment {
				moment = frontier[q]
			}
		}
		moment++
		for _, q := range g.Qubits {
			frontier[q] = moment
		}
		if moment > depth {
			depth = moment
		}
	}
	return depth
}

// GateCounts returns the number of gates per type. The result is a
// fresh map.
func (c *Circuit) GateCounts() map[GateType]int {
	counts := make(map[GateType]int)
	for _, g := range c.queue {
		counts[g.Type]++
	}
	return counts
}

func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Circuit(%d qubits): [", c.nqubits)
	for i, g := range c.queue {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(g.String())
	}
	sb.WriteString("]")
	return sb.String()
}
