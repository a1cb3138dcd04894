package noise

import (
	"fmt"

	"github.com/circuit-sim/circuit-sim/qc"
	"github.com/circuit-sim/circuit-sim/qc/trace"
)

// Registration binds an error descriptor to a gate type, with optional
// qubit filters constraining where channels land. Filters are stored
// normalized (ascending, deduplicated); nil means the filter is absent.
type Registration struct {
	Error  Error
	Source []qc.Qubit
	Target []qc.Qubit
}

// AddOption configures the qubit filters of a registration.
type AddOption func(*Registration)

// SourceQubits restricts injection to gate occurrences touching the
// given qubits. Passing no qubits leaves the filter absent, so a single
// qubit and a set are accepted uniformly.
func SourceQubits(qubits ...qc.Qubit) AddOption {
	return func(r *Registration) {
		r.Source = qc.NormalizeQubits(qubits...)
	}
}

// TargetQubits fixes the qubits that receive channels, regardless of
// which qubits the triggering gate touches. Passing no qubits leaves
// the filter absent.
func TargetQubits(qubits ...qc.Qubit) AddOption {
	return func(r *Registration) {
		r.Target = qc.NormalizeQubits(qubits...)
	}
}

// Model maps gate types to noise registrations and rewrites circuits
// accordingly.
//
// A Model is owned by a single goroutine: Add and Apply on the same
// instance must be serialized by the caller. Concurrent Apply calls are
// safe once registration has finished.
type Model struct {
	registrations map[qc.GateType]Registration
}

// NewModel creates an empty noise model.
func NewModel() *Model {
	return &Model{registrations: make(map[qc.GateType]Registration)}
}

// Add registers err to fire after every occurrence of gate. Any gate
// type is accepted as a key, registered or not in the circuit model;
// unknown types simply never match. Re-registering a gate type replaces
// the previous registration wholesale.
func (m *Model) Add(err Error, gate qc.GateType, opts ...AddOption) {
	reg := Registration{Error: err}
	for _, opt := range opts {
		opt(&reg)
	}
	m.registrations[gate] = reg
}

// Registration returns the registration for gate, if any.
func (m *Model) Registration(gate qc.GateType) (Registration, bool) {
	reg, ok := m.registrations[gate]
	return reg, ok
}

// Size returns the number of registered gate types.
func (m *Model) Size() int {
	return len(m.registrations)
}

// Apply rewrites c into a new circuit with noise channels injected
// after each registered gate occurrence. The input circuit is never
// mutated; its gates are shared with the output. Gate occurrences whose
// type has no registration pass through untouched.
func (m *Model) Apply(c *qc.Circuit) (*qc.Circuit, error) {
	return m.apply(c, nil)
}

// ApplyWithTrace is Apply plus a record of every injection decision.
func (m *Model) ApplyWithTrace(c *qc.Circuit) (*qc.Circuit, *trace.ApplyTrace, error) {
	tr := &trace.ApplyTrace{}
	noisy, err := m.apply(c, tr)
	if err != nil {
		return nil, nil, err
	}
	return noisy, tr, nil
}

func (m *Model) apply(c *qc.Circuit, tr *trace.ApplyTrace) (*qc.Circuit, error) {
	noisy := c.EmptyLike()
	for i, g := range c.Queue() {
		if err := noisy.Add(g); err != nil {
			return nil, fmt.Errorf("copying gate %d (%s): %w", i, g.Type, err)
		}
		reg, ok := m.registrations[g.Type]
		if !ok {
			continue
		}
		qubits := injectionQubits(reg, g)
		var channelType qc.GateType
		for _, q := range qubits {
			channel := reg.Error.Channel(q)
			channelType = channel.Type
			if err := noisy.Add(channel); err != nil {
				return nil, fmt.Errorf("injecting %s after gate %d (%s): %w",
					channel.Type, i, g.Type, err)
			}
		}
		if tr != nil && len(qubits) > 0 {
			tr.Record(trace.InjectionRecord{
				GateIndex:   i,
				GateType:    string(g.Type),
				GateQubits:  qubitsToInts(g.Qubits),
				ChannelType: string(channelType),
				Qubits:      qubitsToInts(qubits),
			})
		}
	}
	noisy.AdoptMetadata(c)
	return noisy, nil
}

// injectionQubits resolves the qubits that receive one channel each for
// a single occurrence of a registered gate:
//
//   - no filters: the gate's own qubits, in the gate's own order
//   - target filter only: the target filter, regardless of the gate
//   - source filter only: the gate's qubits intersected with the
//     filter; an empty intersection injects nothing
//   - both filters: the target filter, in all cases
//
// TODO: decide whether, with both filters set, an empty intersection of
// the gate's qubits and the source filter should suppress injection
// entirely; today the target filter decides regardless, which makes the
// source filter inert whenever a target filter is present.
func injectionQubits(reg Registration, g *qc.Gate) []qc.Qubit {
	switch {
	case reg.Source == nil && reg.Target == nil:
		return g.Qubits
	case reg.Source == nil:
		return reg.Target
	case reg.Target == nil:
		return qc.IntersectQubits(g.Qubits, reg.Source)
	default:
		return reg.Target
	}
}

func qubitsToInts(qubits []qc.Qubit) []int {
	out := make([]int, len(qubits))
	for i, q := range qubits {
		out[i] = int(q)
	}
	return out
}
