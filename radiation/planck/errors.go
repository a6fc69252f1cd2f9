package planck

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a physical input is out of range.
var ErrInvalidParameter = errors.New("planck: invalid parameter")

func validateTemperature(temp float64) error {
	if !isFinite(temp) || temp <= 0 {
		return fmt.Errorf("%w: temperature must be finite and > 0: %g", ErrInvalidParameter, temp)
	}
	return nil
}

func validateBody(radius, emissivity float64) error {
	if !isFinite(radius) || radius <= 0 {
		return fmt.Errorf("%w: radius must be finite and > 0: %g", ErrInvalidParameter, radius)
	}
	if !(emissivity >= 0 && emissivity <= 1) {
		return fmt.Errorf("%w: emissivity must be in [0,1]: %g", ErrInvalidParameter, emissivity)
	}
	return nil
}

func validateScale(scale float64) error {
	if !isFinite(scale) || scale < 0 {
		return fmt.Errorf("%w: intensity scale must be finite and >= 0: %g", ErrInvalidParameter, scale)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
