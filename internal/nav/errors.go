package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction reports an invalid root supplied to a registry.
	ErrConstruction = errors.New("nav: invalid root")
	// ErrStructure reports markup that cannot form a valid navigation tree.
	ErrStructure = errors.New("nav: invalid structure")
	// ErrInvalidNode reports an expansion request on a node without children.
	ErrInvalidNode = errors.New("nav: not a branch node")
	// ErrUnknownNode reports an address the tree does not contain.
	ErrUnknownNode = errors.New("nav: unknown node")
)

// StructureError describes why a node could not be placed in the tree.
type StructureError struct {
	Address string
	Reason  string
}

func (e *StructureError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("%v: %s", ErrStructure, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrStructure, e.Address, e.Reason)
}

func (e *StructureError) Unwrap() error { return ErrStructure }

// InvalidNodeError is returned when a leaf or nested item is toggled.
type InvalidNodeError struct {
	Address string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidNode, e.Address)
}

func (e *InvalidNodeError) Unwrap() error { return ErrInvalidNode }

// UnknownNodeError is returned for addresses (or nodes) outside the tree.
type UnknownNodeError struct {
	Address string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownNode, e.Address)
}

func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }
