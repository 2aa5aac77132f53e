package state

import (
	"errors"
	"testing"
)

// Mock implementations for testing interfaces

type MockDevice struct {
	message string
	calls   int
}

func (m *MockDevice) Activate() string {
	m.calls++
	return m.message
}

type MockStatus struct {
	name   string
	report string
}

func (m MockStatus) Name() string   { return m.name }
func (m MockStatus) Report() string { return m.report }

func TestDevice_Interface(t *testing.T) {
	device := &MockDevice{message: "mock: on"}

	var d Device = device
	if got := d.Activate(); got != "mock: on" {
		t.Errorf("Activate() = %s, expected 'mock: on'", got)
	}
	d.Activate()
	if device.calls != 2 {
		t.Errorf("Activate() called %d times, expected 2", device.calls)
	}
}

func TestStatus_Reports(t *testing.T) {
	tests := []struct {
		name     string
		status   HouseStatus
		expected string
		report   string
	}{
		{"Normal", Normal{}, NORMAL, ">>> STATUS: All systems are operating normally.."},
		{"Emergency", Emergency{}, EMERGENCY, ">>> ATTENTION: System in ALARM mode! Call security."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.status.Name() != tt.expected {
				t.Errorf("Name() = %s, expected %s", tt.status.Name(), tt.expected)
			}
			if tt.status.Report() != tt.report {
				t.Errorf("Report() = %s, expected %s", tt.status.Report(), tt.report)
			}
			// stateless: asking twice gives the same answer
			if tt.status.Report() != tt.status.Report() {
				t.Error("Report() should be stable")
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Normal", "normal", NORMAL, false},
		{"Emergency", "emergency", EMERGENCY, false},
		{"Mixed case", "Emergency", EMERGENCY, false},
		{"Padded", "  normal ", NORMAL, false},
		{"Unknown", "vacation", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := StatusFor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Errorf("StatusFor(%q) error = %v, expected ErrUnknownStatus", tt.input, err)
				}
				if status != nil {
					t.Errorf("StatusFor(%q) = %v, expected nil", tt.input, status)
				}
				return
			}
			if err != nil {
				t.Fatalf("StatusFor(%q) returned error: %v", tt.input, err)
			}
			if status.Name() != tt.expected {
				t.Errorf("StatusFor(%q).Name() = %s, expected %s", tt.input, status.Name(), tt.expected)
			}
		})
	}
}

func TestInterfaceCompatibility(t *testing.T) {
	var device Device = &MockDevice{}
	_ = device

	var status HouseStatus = MockStatus{}
	_ = status

	status = Normal{}
	status = Emergency{}
	_ = status

	t.Log("All interfaces are properly implemented")
}
