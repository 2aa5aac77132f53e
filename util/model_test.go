package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/elijahnyp/smart_home/devices"
	"github.com/elijahnyp/smart_home/home"
	"github.com/elijahnyp/smart_home/state"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		name     string
		step     string
		expected state.HouseStatus
		wantErr  bool
	}{
		{"Cycle", "cycle", nil, false},
		{"Cycle upper case", " CYCLE ", nil, false},
		{"Emergency", "status:emergency", state.Emergency{}, false},
		{"Normal", "Status:Normal", state.Normal{}, false},
		{"Unknown status", "status:party", nil, true},
		{"Unknown step", "reboot", nil, true},
		{"Empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := ParseStep(tt.step)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStep) {
					t.Errorf("ParseStep(%q) error = %v, expected ErrInvalidStep", tt.step, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStep(%q) returned error: %v", tt.step, err)
			}
			if step.Status != tt.expected {
				t.Errorf("ParseStep(%q).Status = %v, expected %v", tt.step, step.Status, tt.expected)
			}
		})
	}
}

func TestModel_BuildModelDefaults(t *testing.T) {
	setDefaults()

	var model Model
	if err := model.BuildModel(); err != nil {
		t.Fatalf("BuildModel() returned error: %v", err)
	}

	if len(model.Devices) != 4 {
		t.Fatalf("BuildModel() gave %d devices, expected 4", len(model.Devices))
	}
	expected := []DeviceSpec{
		{Line: devices.ECONOMY, Kind: devices.CLIMATE},
		{Line: devices.ECONOMY, Kind: devices.SECURITY},
		{Line: devices.LUXURY, Kind: devices.CLIMATE},
		{Kind: devices.LEGACY_LIGHT},
	}
	for i, spec := range expected {
		if model.Devices[i] != spec {
			t.Errorf("Devices[%d] = %+v, expected %+v", i, model.Devices[i], spec)
		}
	}

	if strings.Join(model.Scenario, ",") != strings.Join(DefaultScenario(), ",") {
		t.Errorf("Scenario = %v, expected %v", model.Scenario, DefaultScenario())
	}
}

func TestModel_BuildHome(t *testing.T) {
	model := Model{Devices: []DeviceSpec{
		{Line: "luxury", Kind: "security"},
		{Line: "economy", Kind: "climate"},
		{Kind: "legacy_light"},
	}}

	h := home.New().WithOutput(&bytes.Buffer{})
	if err := model.BuildHome(h); err != nil {
		t.Fatalf("BuildHome() returned error: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("home has %d devices, expected 3", h.Len())
	}

	list := h.Devices()
	if _, ok := list[0].(*devices.RetinaScanner); !ok {
		t.Errorf("device 0 = %T, expected *devices.RetinaScanner", list[0])
	}
	if _, ok := list[1].(*devices.EcoThermostat); !ok {
		t.Errorf("device 1 = %T, expected *devices.EcoThermostat", list[1])
	}
	if _, ok := list[2].(*devices.LightAdapter); !ok {
		t.Errorf("device 2 = %T, expected *devices.LightAdapter", list[2])
	}
}

func TestModel_BuildHomeErrors(t *testing.T) {
	tests := []struct {
		name     string
		spec     DeviceSpec
		expected error
	}{
		{"Unknown line", DeviceSpec{Line: "premium", Kind: "climate"}, devices.ErrUnknownProductLine},
		{"Missing line", DeviceSpec{Kind: "security"}, devices.ErrUnknownProductLine},
		{"Unknown kind", DeviceSpec{Line: "economy", Kind: "toaster"}, devices.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Model{Devices: []DeviceSpec{{Line: "economy", Kind: "climate"}, tt.spec}}
			err := model.BuildHome(home.New().WithOutput(&bytes.Buffer{}))
			if !errors.Is(err, tt.expected) {
				t.Errorf("BuildHome() error = %v, expected %v", err, tt.expected)
			}
			if err != nil && !strings.Contains(err.Error(), "device 1") {
				t.Errorf("BuildHome() error %q should name the failing index", err)
			}
		})
	}
}

func TestModel_Play(t *testing.T) {
	var buf bytes.Buffer
	h := home.New().WithOutput(&buf)

	model := Model{
		Devices:  []DeviceSpec{{Line: "economy", Kind: "security"}},
		Scenario: []string{"cycle", "status:emergency", "cycle"},
	}
	if err := model.BuildHome(h); err != nil {
		t.Fatalf("BuildHome() returned error: %v", err)
	}
	if err := model.Play(h); err != nil {
		t.Fatalf("Play() returned error: %v", err)
	}

	expected := "--- System report ---\n" +
		">>> STATUS: All systems are operating normally..\n" +
		"Eco sensor: scans once per minute.\n" +
		"--------------------\n" +
		"\n[The system switched the status...]\n" +
		"--- System report ---\n" +
		">>> ATTENTION: System in ALARM mode! Call security.\n" +
		"Eco sensor: scans once per minute.\n" +
		"--------------------\n"
	if buf.String() != expected {
		t.Errorf("Play() output = %q, expected %q", buf.String(), expected)
	}
	if h.Status().Name() != state.EMERGENCY {
		t.Errorf("Status after Play() = %s, expected emergency", h.Status().Name())
	}
}

func TestModel_PlayRejectsBadScenarioUpFront(t *testing.T) {
	var buf bytes.Buffer
	h := home.New().WithOutput(&buf)

	model := Model{Scenario: []string{"cycle", "status:holiday"}}
	err := model.Play(h)
	if !errors.Is(err, ErrInvalidStep) {
		t.Errorf("Play() error = %v, expected ErrInvalidStep", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Play() wrote %q before rejecting the scenario", buf.String())
	}
}
