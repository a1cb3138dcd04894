// Package trace provides noise-injection decision records. This package
// has no dependencies on qc/ or qc/noise/ -- it stores pure data types,
// so reporting tools can consume traces without pulling in the engine.
package trace

import (
	"fmt"
	"sort"
	"strings"
)

// InjectionRecord captures the channels injected after one gate.
type InjectionRecord struct {
	GateIndex   int    // position of the triggering gate in the input queue
	GateType    string // type identity of the triggering gate
	GateQubits  []int  // qubits the triggering gate acts on
	ChannelType string // type identity of the injected channel
	Qubits      []int  // qubits that received one channel each
}

// ApplyTrace accumulates the injection decisions of one noise
// application pass, in input-queue order.
type ApplyTrace struct {
	Records []InjectionRecord
}

// Record appends one injection record.
func (t *ApplyTrace) Record(r InjectionRecord) {
	t.Records = append(t.Records, r)
}

// Injected returns the total number of channels injected.
func (t *ApplyTrace) Injected() int {
	total := 0
	for _, r := range t.Records {
		total += len(r.Qubits)
	}
	return total
}

// Summary renders a one-line-per-pair report of injected channel counts,
// keyed "gateType -> channelType" and sorted for deterministic output.
func (t *ApplyTrace) Summary() string {
	if len(t.Records) == 0 {
		return "no channels injected"
	}
	counts := make(map[string]int)
	for _, r := range t.Records {
		counts[r.GateType+" -> "+r.ChannelType] += len(r.Qubits)
	}
	pairs := make([]string, 0, len(counts))
	for pair := range counts {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	var sb strings.Builder
	fmt.Fprintf(&sb, "injected %d channels after %d gates:", t.Injected(), len(t.Records))
	for _, pair := range pairs {
		fmt.Fprintf(&sb, " %s x%d;", pair, counts[pair])
	}
	return strings.TrimSuffix(sb.String(), ";")
}
