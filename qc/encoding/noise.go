package encoding

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/circuit-sim/circuit-sim/qc"
	"github.com/circuit-sim/circuit-sim/qc/noise"
)

// Error descriptor type names accepted in noise documents.
const (
	ErrorTypePauli             = "pauli"
	ErrorTypeThermalRelaxation = "thermal_relaxation"
	ErrorTypeReset             = "reset"

	// Deprecated alias for ErrorTypePauli, still accepted on input.
	errorTypeDepolarizing = "depolarizing"
)

// NoiseSpec is the top-level noise model document.
//
//	registrations:
//	  - gate: h
//	    source_qubits: [1]
//	    error:
//	      type: pauli
//	      px: 0.5
//	  - gate: cx
//	    error:
//	      type: thermal_relaxation
//	      t1: 100
//	      t2: 50
//	      time: 0.1
type NoiseSpec struct {
	Registrations []RegistrationSpec `yaml:"registrations"`
}

// RegistrationSpec binds one error descriptor to one gate type.
// Omitted qubit filters stay absent (not empty).
type RegistrationSpec struct {
	Gate         string    `yaml:"gate"`
	Error        ErrorSpec `yaml:"error"`
	SourceQubits []int     `yaml:"source_qubits,omitempty"`
	TargetQubits []int     `yaml:"target_qubits,omitempty"`
}

// ErrorSpec parameterizes one error descriptor. Which fields apply
// depends on Type; the rest must stay zero.
type ErrorSpec struct {
	Type string `yaml:"type"`

	// pauli
	PX float64 `yaml:"px,omitempty"`
	PY float64 `yaml:"py,omitempty"`
	PZ float64 `yaml:"pz,omitempty"`

	// thermal_relaxation
	T1                float64 `yaml:"t1,omitempty"`
	T2                float64 `yaml:"t2,omitempty"`
	Time              float64 `yaml:"time,omitempty"`
	ExcitedPopulation float64 `yaml:"excited_population,omitempty"`

	// reset
	P0 float64 `yaml:"p0,omitempty"`
	P1 float64 `yaml:"p1,omitempty"`

	Seed *int64 `yaml:"seed,omitempty"`
}

// DecodeNoiseModel parses a YAML noise document and builds the model.
// Descriptor parameters funnel through the noise constructors, so
// out-of-range values fail with noise.ErrInvalidParameter.
func DecodeNoiseModel(data []byte) (*noise.Model, error) {
	var spec NoiseSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing noise spec: %w", err)
	}
	model := noise.NewModel()
	for i, rs := range spec.Registrations {
		if rs.Gate == "" {
			return nil, fmt.Errorf("registration %d: missing gate type", i)
		}
		descriptor, err := buildError(rs.Error)
		if err != nil {
			return nil, fmt.Errorf("registration %d (%s): %w", i, rs.Gate, err)
		}
		var opts []noise.AddOption
		if rs.SourceQubits != nil {
			opts = append(opts, noise.SourceQubits(intsToQubits(rs.SourceQubits)...))
		}
		if rs.TargetQubits != nil {
			opts = append(opts, noise.TargetQubits(intsToQubits(rs.TargetQubits)...))
		}
		model.Add(descriptor, qc.GateType(rs.Gate), opts...)
	}
	return model, nil
}

// LoadNoiseModel reads and decodes a noise document from path.
func LoadNoiseModel(path string) (*noise.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading noise spec: %w", err)
	}
	model, err := DecodeNoiseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

func buildError(spec ErrorSpec) (noise.Error, error) {
	var opts []noise.Option
	if spec.Seed != nil {
		opts = append(opts, noise.WithSeed(*spec.Seed))
	}
	switch spec.Type {
	case errorTypeDepolarizing:
		logrus.Warnf("error type %q is deprecated; use %q", errorTypeDepolarizing, ErrorTypePauli)
		fallthrough
	case ErrorTypePauli:
		return noise.NewPauliError(spec.PX, spec.PY, spec.PZ, opts...)
	case ErrorTypeThermalRelaxation:
		return noise.NewThermalRelaxationError(spec.T1, spec.T2, spec.Time, spec.ExcitedPopulation, opts...)
	case ErrorTypeReset:
		return noise.NewResetError(spec.P0, spec.P1, opts...)
	case "":
		return nil, fmt.Errorf("missing error type")
	default:
		return nil, fmt.Errorf("unknown error type %q", spec.Type)
	}
}
