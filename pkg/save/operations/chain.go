package operations

import (
	"fmt"
	"strings"
)

// SaveChain is the operation chain of a save file: the JSON text is XORed
// with the save key, then base64 encoded.
var SaveChain = []uint8{OP_XOR, OP_BASE64}

// PackOperations packs a list of operations into a 64-bit integer.
// Each operation takes 8 bits, allowing up to 8 operations in the chain.
// Operations are packed in execution order (first operation in LSB).
func PackOperations(operations []uint8) (uint64, error) {
	if len(operations) > 8 {
		return 0, fmt.Errorf("maximum 8 operations allowed, got %d", len(operations))
	}

	var packed uint64
	for i, op := range operations {
		packed |= uint64(op) << (i * 8)
	}

	return packed, nil
}

// UnpackOperations unpacks a 64-bit integer into a list of operations.
func UnpackOperations(packed uint64) []uint8 {
	var operations []uint8

	for i := 0; i < 8; i++ {
		op := uint8((packed >> (i * 8)) & 0xFF)
		if op == OP_NONE { // OP_NONE terminates the chain
			break
		}
		operations = append(operations, op)
	}

	return operations
}

// OperationsToString converts packed operations to human-readable string.
func OperationsToString(packed uint64) string {
	if packed == 0 {
		return "raw"
	}

	operations := UnpackOperations(packed)

	if name, ok := commonChains[operationsToChain(operations)]; ok {
		return name
	}

	var names []string
	for _, op := range operations {
		names = append(names, strings.ToLower(GetName(op)))
	}

	return strings.Join(names, "|")
}

// operationsToChain converts operations slice to string for map lookup
func operationsToChain(ops []uint8) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%02x", op)
	}
	return strings.Join(parts, "-")
}

var commonChains = map[string]string{
	"40-50": "save",
	"40":    "xor",
	"50":    "base64",
}

// ApplyChain applies a chain of operations to data
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain reverses a chain of operations on data
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	// Apply operations in reverse order
	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		if !op.CanReverse() {
			return nil, fmt.Errorf("operation %s is not reversible", op.Name())
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}
