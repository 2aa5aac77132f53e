package devices

type EcoThermostat struct {
	identity
}

func (EcoThermostat) Activate() string {
	return "Eco thermostat: maintains +19°C (economy mode)."
}

type EcoMotionSensor struct {
	identity
}

func (EcoMotionSensor) Activate() string {
	return "Eco sensor: scans once per minute."
}
