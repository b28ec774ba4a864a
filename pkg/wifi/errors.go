package wifi

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("wifi: invalid setting")

	// ErrRadioBusy is returned when another subsystem holds the radio.
	ErrRadioBusy = errors.New("wifi: radio busy")

	// ErrAlreadyStarted is returned by Initialize after a Start.
	ErrAlreadyStarted = errors.New("wifi: controller already started")
)

// ValidationError reports a rejected settings field. The field keeps its
// previous value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("wifi: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors returns the validation errors contained in err, which may
// be a single *ValidationError or a join of several.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*ValidationError
		for _, e := range joined.Unwrap() {
			out = append(out, ValidationErrors(e)...)
		}
		return out
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return []*ValidationError{ve}
	}
	return nil
}

// DriverError reports a radio call the hardware rejected. It unwraps to
// the driver's error, so errors.Is(err, radio.ErrRejected) holds for
// rejections.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("wifi: driver %s: %v", e.Op, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}
