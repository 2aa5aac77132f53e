package util

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/elijahnyp/smart_home/devices"
	"github.com/elijahnyp/smart_home/home"
	"github.com/elijahnyp/smart_home/state"
)

var ErrInvalidStep = errors.New("invalid scenario step")

const ( // scenario steps
	STEP_CYCLE  = "cycle"
	STEP_STATUS = "status:"
)

// DeviceSpec names one device slot in the home: the product line it comes
// from and what kind of device it is.
type DeviceSpec struct {
	Line string `mapstructure:"line"`
	Kind string `mapstructure:"kind"`
}

// Model is the home layout and the script played against it.
type Model struct {
	Devices  []DeviceSpec `mapstructure:"devices"`
	Scenario []string     `mapstructure:"scenario"`
}

// Step is one parsed scenario entry. A nil Status means run a cycle.
type Step struct {
	Status state.HouseStatus
}

func DefaultDevices() []map[string]string {
	return []map[string]string{
		{"line": devices.ECONOMY, "kind": devices.CLIMATE},
		{"line": devices.ECONOMY, "kind": devices.SECURITY},
		{"line": devices.LUXURY, "kind": devices.CLIMATE},
		{"kind": devices.LEGACY_LIGHT},
	}
}

func DefaultScenario() []string {
	return []string{
		STEP_CYCLE,
		STEP_STATUS + state.EMERGENCY,
		STEP_CYCLE,
		STEP_STATUS + state.NORMAL,
		STEP_CYCLE,
	}
}

func ParseStep(s string) (Step, error) {
	step := strings.ToLower(strings.TrimSpace(s))
	if step == STEP_CYCLE {
		return Step{}, nil
	}
	if name, ok := strings.CutPrefix(step, STEP_STATUS); ok {
		status, err := state.StatusFor(name)
		if err != nil {
			return Step{}, errors.Wrapf(ErrInvalidStep, "%q: %v", s, err)
		}
		return Step{Status: status}, nil
	}
	return Step{}, errors.Wrapf(ErrInvalidStep, "%q", s)
}

func (m *Model) BuildModel() error {
	var built Model
	if err := Config.UnmarshalKey("home.devices", &built.Devices); err != nil {
		Logger.Error().Msgf("error unmarshaling model: %v", err)
		return errors.Wrap(err, "reading home.devices")
	}
	built.Scenario = Config.GetStringSlice("home.scenario")
	*m = built
	return nil
}

// Steps parses the whole scenario up front so a bad entry is caught before
// anything is printed.
func (m Model) Steps() ([]Step, error) {
	steps := make([]Step, 0, len(m.Scenario))
	for i, s := range m.Scenario {
		step, err := ParseStep(s)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario step %d", i)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// BuildHome installs the model's devices into h, in order.
func (m Model) BuildHome(h *home.SmartHome) error {
	for i, spec := range m.Devices {
		var factory devices.Factory
		if !strings.EqualFold(strings.TrimSpace(spec.Kind), devices.LEGACY_LIGHT) {
			f, err := devices.FactoryFor(spec.Line)
			if err != nil {
				return errors.Wrapf(err, "device %d", i)
			}
			factory = f
		}
		d, err := devices.Build(factory, spec.Kind)
		if err != nil {
			return errors.Wrapf(err, "device %d", i)
		}
		if err := h.AddDevice(d); err != nil {
			return errors.Wrapf(err, "device %d", i)
		}
	}
	Logger.Debug().Msgf("home built with %d devices", h.Len())
	return nil
}

// Play runs the scenario against h.
func (m Model) Play(h *home.SmartHome) error {
	steps, err := m.Steps()
	if err != nil {
		return err
	}
	for i, step := range steps {
		if step.Status == nil {
			err = h.RunCycle()
		} else {
			err = h.SetStatus(step.Status)
		}
		if err != nil {
			return errors.Wrapf(err, "scenario step %d", i)
		}
	}
	return nil
}
