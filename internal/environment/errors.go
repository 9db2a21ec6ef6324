package environment

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidFuelType matches any *LookupError through errors.Is.
const ErrInvalidFuelType = constError("Tipo de combustible no valido")

// LookupErrorCode is the error code carried by a failed fuel lookup.
const LookupErrorCode = 500

// LookupError is the failure record returned in place of a FuelProfile when
// the requested fuel type is unknown.
type LookupError struct {
	Message  string `json:"error"`
	Code     int    `json:"error_code"`
	FuelType string `json:"-"`
}

func newLookupError(fuelType string) *LookupError {
	return &LookupError{
		Message:  string(ErrInvalidFuelType),
		Code:     LookupErrorCode,
		FuelType: fuelType,
	}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %q (code %d)", e.Message, e.FuelType, e.Code)
}

// Is reports whether target is ErrInvalidFuelType.
func (e *LookupError) Is(target error) bool {
	return target == ErrInvalidFuelType
}
