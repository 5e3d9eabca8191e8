package art

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the invariants a record must hold before it enters a
// repository.
func Validate(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidInput)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if math.IsNaN(rec.Price) || math.IsInf(rec.Price, 0) || rec.Price < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}
	if d, ok := rec.Variant.(DigitalArt); ok {
		if d.Resolution.Width < 0 || d.Resolution.Height < 0 {
			return fmt.Errorf("%w: resolution must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
