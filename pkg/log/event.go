package log

import (
	"time"
)

// Event is a single diagnostic record emitted by the node.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the boot session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Component that emitted the event.
	Component Component `cbor:"4,keyasint"`

	// Mode is the operating mode at the time of the event, if known.
	Mode string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Validation  *ValidationEvent  `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Driver      *DriverEvent      `cbor:"12,keyasint,omitempty"`
	Request     *RequestEvent     `cbor:"13,keyasint,omitempty"`
	Command     *CommandEvent     `cbor:"14,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryValidation indicates a rejected settings update.
	CategoryValidation Category = 0
	// CategoryState indicates an operating mode transition.
	CategoryState Category = 1
	// CategoryDriver indicates a radio driver call.
	CategoryDriver Category = 2
	// CategoryRequest indicates a served HTTP request.
	CategoryRequest Category = 3
	// CategoryCommand indicates an interpreter command.
	CategoryCommand Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "VALIDATION"
	case CategoryState:
		return "STATE"
	case CategoryDriver:
		return "DRIVER"
	case CategoryRequest:
		return "REQUEST"
	case CategoryCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category with the given name (case-sensitive,
// as returned by String).
func ParseCategory(s string) (Category, bool) {
	for c := CategoryValidation; c <= CategoryCommand; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Component identifies the emitting subsystem.
type Component uint8

const (
	ComponentController Component = 0
	ComponentValidator  Component = 1
	ComponentRadio      Component = 2
	ComponentRoutes     Component = 3
	ComponentResolver   Component = 4
	ComponentCaptive    Component = 5
	ComponentDiscovery  Component = 6
	ComponentCLI        Component = 7
	ComponentScanner    Component = 8
)

// String returns the component name.
func (c Component) String() string {
	switch c {
	case ComponentController:
		return "CONTROLLER"
	case ComponentValidator:
		return "VALIDATOR"
	case ComponentRadio:
		return "RADIO"
	case ComponentRoutes:
		return "ROUTES"
	case ComponentResolver:
		return "RESOLVER"
	case ComponentCaptive:
		return "CAPTIVE"
	case ComponentDiscovery:
		return "DISCOVERY"
	case ComponentCLI:
		return "CLI"
	case ComponentScanner:
		return "SCANNER"
	default:
		return "UNKNOWN"
	}
}

// ParseComponent returns the component with the given name.
func ParseComponent(s string) (Component, bool) {
	for c := ComponentController; c <= ComponentScanner; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// ValidationEvent captures a rejected settings field.
type ValidationEvent struct {
	// Field is the settings field name (e.g. "channel").
	Field string `cbor:"1,keyasint"`

	// Value is the rejected candidate, masked for secrets.
	Value string `cbor:"2,keyasint,omitempty"`

	// Reason describes the violated constraint.
	Reason string `cbor:"3,keyasint"`
}

// StateChangeEvent captures an operating mode transition.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// DriverEvent captures the outcome of a radio driver call.
type DriverEvent struct {
	// Operation is the driver call name.
	Operation string `cbor:"1,keyasint"`

	// Applied is false when the hardware rejected the call.
	Applied bool `cbor:"2,keyasint"`

	// Error is the rejection message.
	Error string `cbor:"3,keyasint,omitempty"`
}

// RequestEvent captures a request served by the route table.
type RequestEvent struct {
	Method string `cbor:"1,keyasint"`
	Path   string `cbor:"2,keyasint"`
	Status int    `cbor:"3,keyasint"`

	// RequestID is the router-assigned request identifier.
	RequestID string `cbor:"4,keyasint,omitempty"`

	// Remote is the client address.
	Remote string `cbor:"5,keyasint,omitempty"`

	// Duration from request receipt to handler return.
	// Stored as nanoseconds.
	Duration time.Duration `cbor:"6,keyasint,omitempty"`
}

// CommandEvent captures a command handed to the interpreter.
type CommandEvent struct {
	// Line is the raw command text.
	Line string `cbor:"1,keyasint"`

	// Source is where the command came from ("http", "console").
	Source string `cbor:"2,keyasint,omitempty"`

	// Error is set when the command failed or was dropped.
	Error string `cbor:"3,keyasint,omitempty"`
}
