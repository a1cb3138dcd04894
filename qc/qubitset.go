package qc

import "sort"

// NormalizeQubits returns a sorted, deduplicated copy of the given
// qubits. Ascending index order is the natural order of a qubit set;
// the noise engine iterates filter sets in this order. Returns nil for
// empty input.
func NormalizeQubits(qubits ...Qubit) []Qubit {
	if len(qubits) == 0 {
		return nil
	}
	out := make([]Qubit, len(qubits))
	copy(out, qubits)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:1]
	for _, q := range out[1:] {
		if q != dedup[len(dedup)-1] {
			dedup = append(dedup, q)
		}
	}
	return dedup
}

// IntersectQubits returns the qubits present in both a and b, in
// ascending order without duplicates. Returns nil when the
// intersection is empty.
func IntersectQubits(a, b []Qubit) []Qubit {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[Qubit]struct{}, len(b))
	for _, q := range b {
		inB[q] = struct{}{}
	}
	var out []Qubit
	for _, q := range NormalizeQubits(a...) {
		if _, ok := inB[q]; ok {
			out = append(out, q)
		}
	}
	return out
}
