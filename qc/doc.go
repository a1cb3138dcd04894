// Package qc provides the circuit and gate model for circuit-sim.
//
// # Reading Guide
//
// Start with these three files to understand the data model:
//   - gate.go: GateType identities, the Gate value, and constructors
//   - circuit.go: the ordered gate queue and its bookkeeping
//   - qubitset.go: the qubit-set operations used by the noise engine
//
// # Architecture
//
// The qc package holds pure data types; behavior lives in sub-packages:
//   - qc/noise/: error descriptors, the noise model, and noise application
//   - qc/random/: deterministic random circuit generation
//   - qc/encoding/: YAML circuit and noise-model formats
//   - qc/trace/: noise-injection decision records
//
// A Circuit owns its queue. Gates are added through Circuit.Add, which
// validates qubit bounds and gate arity and maintains the parametrized,
// trainable, and measurement bookkeeping that downstream consumers read.
package qc
