package devices

// LegacyLight predates the Device interface and is left as it is.
type LegacyLight struct{}

func NewLegacyLight() *LegacyLight {
	return &LegacyLight{}
}

func (l *LegacyLight) TurnOnOldBulb() string {
	return "Old lamp: light turned on via adapter."
}

// LightAdapter lets a LegacyLight sit in the home as a regular Device.
type LightAdapter struct {
	identity
	light *LegacyLight
}

func NewLightAdapter(light *LegacyLight) (*LightAdapter, error) {
	if light == nil {
		return nil, ErrNilLegacyLight
	}
	return &LightAdapter{identity: newIdentity(), light: light}, nil
}

func (a *LightAdapter) Activate() string {
	return a.light.TurnOnOldBulb()
}
