package devices

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/elijahnyp/smart_home/state"
)

const ( // product lines
	ECONOMY = "economy"
	LUXURY  = "luxury"
)

// Factory builds a matched climate control and security sensor for one
// product line. Every call returns a new instance.
type Factory interface {
	Line() string
	CreateClimateControl() state.Device
	CreateSecuritySensor() state.Device
}

type EconomyFactory struct{}

func (EconomyFactory) Line() string { return ECONOMY }

func (EconomyFactory) CreateClimateControl() state.Device {
	return &EcoThermostat{identity: newIdentity()}
}

func (EconomyFactory) CreateSecuritySensor() state.Device {
	return &EcoMotionSensor{identity: newIdentity()}
}

type LuxuryFactory struct{}

func (LuxuryFactory) Line() string { return LUXURY }

func (LuxuryFactory) CreateClimateControl() state.Device {
	return &LuxuryClimateControl{identity: newIdentity()}
}

func (LuxuryFactory) CreateSecuritySensor() state.Device {
	return &RetinaScanner{identity: newIdentity()}
}

// FactoryFor resolves a product line name to its factory.
func FactoryFor(line string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ECONOMY:
		return EconomyFactory{}, nil
	case LUXURY:
		return LuxuryFactory{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownProductLine, "%q", line)
}
