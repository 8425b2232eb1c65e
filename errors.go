package unitgo

import "fmt"

// DimensionMismatchError indicates that an operation requiring isomorphic
// operands (same exponent vector) was invoked with incompatible dimensions.
//
// Go cannot reject these operations at compile time, so the offending call
// fails fast by panicking with a *DimensionMismatchError. Callers that want
// to validate ahead of time can use Compatible or Check.
type DimensionMismatchError struct {
	Op    string
	Left  Dimension
	Right Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("unitgo: %s: dimension mismatch: %q vs %q", e.Op, e.Left.String(), e.Right.String())
}

// InvalidAssignmentError indicates a bare scalar was assigned to a
// dimensioned quantity. Only the dimensionless quantity accepts raw scalars.
type InvalidAssignmentError struct {
	Dimension Dimension
}

func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("unitgo: cannot assign a bare scalar to a quantity of dimension %q", e.Dimension.String())
}

// DuplicateUnitError indicates an attempt to register a second primary unit
// for an exponent vector that already has one. The first registration wins;
// re-registering is rejected so the canonical name for a dimension can never
// be silently replaced.
type DuplicateUnitError struct {
	Dimension Dimension
	Existing  string
	Rejected  string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unitgo: dimension %q already registered by %q, cannot register %q",
		e.Dimension.String(), e.Existing, e.Rejected)
}
