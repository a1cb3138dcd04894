package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/circuit-sim/circuit-sim/qc"
	"github.com/circuit-sim/circuit-sim/qc/encoding"
)

var (
	inspectCircuitPath string // Path to the circuit YAML
	inspectFull        bool   // Dump the full decoded structure
)

// inspectCmd summarizes a circuit document: register size, depth, and
// gate counts by type.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a circuit document",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(inspectCircuitPath, inspectFull, os.Stdout); err != nil {
			logrus.Fatalf("inspect failed: %v", err)
		}
	},
}

func runInspect(circuitPath string, full bool, w io.Writer) error {
	if circuitPath == "" {
		return fmt.Errorf("no circuit document provided (--circuit)")
	}
	circuit, err := encoding.LoadCircuit(circuitPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "qubits: %d\n", circuit.NQubits())
	fmt.Fprintf(w, "gates:  %d\n", circuit.Size())
	fmt.Fprintf(w, "depth:  %d\n", circuit.Depth())

	counts := circuit.GateCounts()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  %-28s %d\n", t, counts[qc.GateType(t)])
	}

	if full {
		fmt.Fprint(w, spew.Sdump(circuit))
	}
	return nil
}

func init() {
	inspectCmd.Flags().StringVar(&inspectCircuitPath, "circuit", "", "Path to the circuit YAML document")
	inspectCmd.Flags().BoolVar(&inspectFull, "full", false, "Dump the full decoded structure")

	rootCmd.AddCommand(inspectCmd)
}
