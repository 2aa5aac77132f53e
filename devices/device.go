// Package devices holds the concrete smart home devices and the factories
// that build them per product line.
package devices

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/elijahnyp/smart_home/state"
)

var (
	ErrNilLegacyLight     = errors.New("legacy light must not be nil")
	ErrUnknownProductLine = errors.New("unknown product line")
	ErrUnknownKind        = errors.New("unknown device kind")
)

const ( // device kinds
	CLIMATE      = "climate"
	SECURITY     = "security"
	LEGACY_LIGHT = "legacy_light"
)

// identity gives every device instance its own id so fresh instances can be
// told apart in logs.
type identity struct {
	id string
}

func newIdentity() identity {
	return identity{id: uuid.New().String()}
}

func (i identity) ID() string {
	return i.id
}

// Build returns a fresh device of the given kind from factory f. Legacy
// lights are not a product line of their own and come wrapped in an adapter.
func Build(f Factory, kind string) (state.Device, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == LEGACY_LIGHT {
		adapter, err := NewLightAdapter(NewLegacyLight())
		if err != nil {
			return nil, err
		}
		return adapter, nil
	}
	if kind != CLIMATE && kind != SECURITY {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	if f == nil {
		return nil, errors.Wrapf(ErrUnknownProductLine, "no factory for %s device", kind)
	}
	if kind == CLIMATE {
		return f.CreateClimateControl(), nil
	}
	return f.CreateSecuritySensor(), nil
}
