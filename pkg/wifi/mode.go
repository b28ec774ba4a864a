package wifi

// Mode is the operating mode of the node.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeAccessPoint
	ModeStation
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "OFF"
	case ModeAccessPoint:
		return "AP"
	case ModeStation:
		return "STATION"
	default:
		return "UNKNOWN"
	}
}

// ModeChange describes a completed transition.
type ModeChange struct {
	From   Mode
	To     Mode
	Reason string
}

// ModeChangeHandler is called after every transition.
type ModeChangeHandler func(ModeChange)
