package spatial

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperand is returned when an operator receives a value
	// outside its accepted operand set.
	ErrUnsupportedOperand = errors.New("spatial: unsupported operand")

	// ErrInvalidArgument is returned when a vector constructor receives
	// exactly one of the optional y and z components.
	ErrInvalidArgument = errors.New("spatial: invalid argument")
)

func unsupportedOperand(op string, operand any) error {
	return fmt.Errorf("%w: %s does not accept %T", ErrUnsupportedOperand, op, operand)
}

func partialComponents(typeName string) error {
	return fmt.Errorf("%w: either set all components %s(1, 1, 1) or only the first to broadcast it %s(1)",
		ErrInvalidArgument, typeName, typeName)
}
