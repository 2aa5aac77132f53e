package state

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownStatus = errors.New("unknown house status")

const (
	NORMAL    = "normal"
	EMERGENCY = "emergency"
)

// HouseStatus is the operating mode of the home. Variants carry no state and
// are replaced wholesale by the home, never mutated.
type HouseStatus interface {
	Name() string
	Report() string
}

type Normal struct{}

func (Normal) Name() string { return NORMAL }

func (Normal) Report() string {
	return ">>> STATUS: All systems are operating normally.."
}

type Emergency struct{}

func (Emergency) Name() string { return EMERGENCY }

func (Emergency) Report() string {
	return ">>> ATTENTION: System in ALARM mode! Call security."
}

func StatusFor(name string) (HouseStatus, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NORMAL:
		return Normal{}, nil
	case EMERGENCY:
		return Emergency{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownStatus, "%q", name)
}
