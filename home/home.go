// Package home runs the smart home: it keeps the current house status and
// the ordered device list, and renders a report every cycle.
package home

import (
	"io"
	"os"
	"reflect"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/elijahnyp/smart_home/state"
)

var (
	ErrNilDevice = errors.New("device must not be nil")
	ErrNilStatus = errors.New("status must not be nil")
)

// Report is the outcome of one cycle: the status line followed by what each
// device did, in the order the devices were added.
type Report struct {
	Status      string   `json:"status" yaml:"status"`
	Report      string   `json:"report" yaml:"report"`
	Activations []string `json:"activations" yaml:"activations"`
}

// SwitchNotice is emitted every time the status is replaced.
type SwitchNotice struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type SmartHome struct {
	status   state.HouseStatus
	devices  []state.Device
	out      io.Writer
	renderer Renderer
	log      zerolog.Logger
}

// New returns an empty home in the normal status, reporting as text on
// stdout.
func New() *SmartHome {
	return &SmartHome{
		status:   state.Normal{},
		out:      os.Stdout,
		renderer: TextRenderer{},
		log:      zerolog.Nop(),
	}
}

func (h *SmartHome) WithOutput(w io.Writer) *SmartHome {
	h.out = w
	return h
}

func (h *SmartHome) WithRenderer(r Renderer) *SmartHome {
	h.renderer = r
	return h
}

func (h *SmartHome) WithLogger(l zerolog.Logger) *SmartHome {
	h.log = l
	return h
}

func (h *SmartHome) Status() state.HouseStatus {
	return h.status
}

// SetStatus replaces the current status, whatever it was, and announces the
// switch. The returned error only ever reports a failed write; the status is
// replaced regardless.
func (h *SmartHome) SetStatus(s state.HouseStatus) error {
	if s == nil {
		return ErrNilStatus
	}
	notice := SwitchNotice{From: h.status.Name(), To: s.Name()}
	h.status = s
	h.log.Info().Msgf("status switched from %s to %s", notice.From, notice.To)
	if err := h.renderer.RenderSwitch(h.out, notice); err != nil {
		return errors.Wrap(err, "writing status switch")
	}
	return nil
}

// AddDevice appends d to the home. A nil device, including a nil pointer
// wrapped in the interface, is rejected.
func (h *SmartHome) AddDevice(d state.Device) error {
	if isNil(d) {
		return ErrNilDevice
	}
	h.devices = append(h.devices, d)
	h.log.Debug().Str("id", deviceID(d)).Msgf("added %T as device #%d", d, len(h.devices))
	return nil
}

func (h *SmartHome) Len() int {
	return len(h.devices)
}

func (h *SmartHome) Devices() []state.Device {
	devices := make([]state.Device, len(h.devices))
	copy(devices, h.devices)
	return devices
}

// Cycle reports the status and activates every device once, in insertion
// order. It leaves the home untouched.
func (h *SmartHome) Cycle() Report {
	r := Report{
		Status:      h.status.Name(),
		Report:      h.status.Report(),
		Activations: make([]string, 0, len(h.devices)),
	}
	for _, d := range h.devices {
		r.Activations = append(r.Activations, d.Activate())
		h.log.Trace().Str("id", deviceID(d)).Msgf("activated %T", d)
	}
	h.log.Debug().Msgf("cycle in %s status activated %d devices", r.Status, len(r.Activations))
	return r
}

// RunCycle runs Cycle and writes the report out.
func (h *SmartHome) RunCycle() error {
	if err := h.renderer.RenderCycle(h.out, h.Cycle()); err != nil {
		return errors.Wrap(err, "writing cycle report")
	}
	return nil
}

func deviceID(d state.Device) string {
	if i, ok := d.(interface{ ID() string }); ok {
		return i.ID()
	}
	return ""
}

func isNil(d state.Device) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
