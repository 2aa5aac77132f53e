package home

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

const ( // output formats
	TEXT = "text"
	JSON = "json"
	YAML = "yaml"
)

const (
	reportHeader = "--- System report ---"
	reportFooter = "--------------------"
	switchNotice = "[The system switched the status...]"
)

// Renderer turns home events into output.
type Renderer interface {
	RenderCycle(w io.Writer, r Report) error
	RenderSwitch(w io.Writer, n SwitchNotice) error
}

func RendererFor(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case TEXT, "":
		return TextRenderer{}, nil
	case JSON:
		return JSONRenderer{}, nil
	case YAML, "yml":
		return YAMLRenderer{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// TextRenderer writes the plain console transcript.
type TextRenderer struct{}

func (TextRenderer) RenderCycle(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString(reportHeader + "\n")
	b.WriteString(r.Report + "\n")
	for _, a := range r.Activations {
		b.WriteString(a + "\n")
	}
	b.WriteString(reportFooter + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (TextRenderer) RenderSwitch(w io.Writer, n SwitchNotice) error {
	_, err := fmt.Fprintf(w, "\n%s\n", switchNotice)
	return err
}

type cycleEvent struct {
	Event       string   `json:"event" yaml:"event"`
	Status      string   `json:"status" yaml:"status"`
	Report      string   `json:"report" yaml:"report"`
	Activations []string `json:"activations" yaml:"activations"`
}

type switchEvent struct {
	Event string `json:"event" yaml:"event"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
}

func newCycleEvent(r Report) cycleEvent {
	return cycleEvent{Event: "cycle", Status: r.Status, Report: r.Report, Activations: r.Activations}
}

func newSwitchEvent(n SwitchNotice) switchEvent {
	return switchEvent{Event: "switch", From: n.From, To: n.To}
}

// JSONRenderer writes one JSON object per line.
type JSONRenderer struct{}

func (JSONRenderer) RenderCycle(w io.Writer, r Report) error {
	return json.NewEncoder(w).Encode(newCycleEvent(r))
}

func (JSONRenderer) RenderSwitch(w io.Writer, n SwitchNotice) error {
	return json.NewEncoder(w).Encode(newSwitchEvent(n))
}

// YAMLRenderer writes one YAML document per event.
type YAMLRenderer struct{}

func (YAMLRenderer) RenderCycle(w io.Writer, r Report) error {
	return writeYAML(w, newCycleEvent(r))
}

func (YAMLRenderer) RenderSwitch(w io.Writer, n SwitchNotice) error {
	return writeYAML(w, newSwitchEvent(n))
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshalling yaml")
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
