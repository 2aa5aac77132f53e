package devices

type LuxuryClimateControl struct {
	identity
}

func (LuxuryClimateControl) Activate() string {
	return "Luxury Climate: precise control of +22°C and humidity."
}

type RetinaScanner struct {
	identity
}

func (RetinaScanner) Activate() string {
	return "Luxury Security: Retinal Scanning."
}
