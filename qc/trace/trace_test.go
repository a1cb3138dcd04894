package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTrace_Injected_SumsQubitsAcrossRecords(t *testing.T) {
	tr := &ApplyTrace{}
	tr.Record(InjectionRecord{GateType: "h", ChannelType: "pauli_noise_channel", Qubits: []int{0}})
	tr.Record(InjectionRecord{GateType: "cx", ChannelType: "pauli_noise_channel", Qubits: []int{0, 1}})

	assert.Equal(t, 3, tr.Injected())
}

func TestApplyTrace_Summary_Empty(t *testing.T) {
	tr := &ApplyTrace{}
	assert.Equal(t, "no channels injected", tr.Summary())
}

func TestApplyTrace_Summary_DeterministicOrdering(t *testing.T) {
	// GIVEN records for two gate types in non-alphabetical order
	tr := &ApplyTrace{}
	tr.Record(InjectionRecord{GateIndex: 2, GateType: "h", ChannelType: "reset_channel", Qubits: []int{1}})
	tr.Record(InjectionRecord{GateIndex: 0, GateType: "cx", ChannelType: "pauli_noise_channel", Qubits: []int{0, 1}})
	tr.Record(InjectionRecord{GateIndex: 4, GateType: "h", ChannelType: "reset_channel", Qubits: []int{0}})

	// THEN the summary is sorted by pair name
	want := "injected 4 channels after 3 gates:" +
		" cx -> pauli_noise_channel x2; h -> reset_channel x2"
	assert.Equal(t, want, tr.Summary())
}
