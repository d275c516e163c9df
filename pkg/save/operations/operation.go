package operations

import (
	"fmt"
)

// Operation identifiers for the save transform chain
const (
	// No operation - raw data
	OP_NONE = 0x00

	// Obfuscation operations (0x40-0x4F)
	OP_XOR = 0x40 // Repeating-key XOR

	// Text encoding operations (0x50-0x5F)
	OP_BASE64 = 0x50 // RFC 4648 standard base64, padded
)

// Operation represents a single reversible transformation
type Operation interface {
	// ID returns the operation identifier (e.g., OP_XOR)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply applies the operation to input data.
	// Operations may reuse the input buffer for their result.
	Apply(input []byte) ([]byte, error)

	// Reverse reverses the operation (e.g., base64 decode for base64 encode)
	Reverse(input []byte) ([]byte, error)

	// CanReverse returns true if the operation is reversible
	CanReverse() bool
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) CanReverse() bool {
	return true
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_XOR:
		return "XOR"
	case OP_BASE64:
		return "BASE64"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
