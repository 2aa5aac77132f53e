package state

// Device is anything the home can switch on. Activate returns what the
// device did.
type Device interface {
	Activate() string
}
