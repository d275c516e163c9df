package encode

import (
	"github.com/provide-io/savecodec/pkg/save/operations"
	"github.com/provide-io/savecodec/pkg/utils"
)

func init() {
	operations.Register(NewXOROperation(nil))
}

// XOROperation obfuscates data with a repeating key
type XOROperation struct {
	operations.BaseOperation
	key []byte
}

// NewXOROperation creates a new XOR operation holding its own copy of key.
// A nil or empty key selects the save key.
func NewXOROperation(key []byte) *XOROperation {
	if len(key) == 0 {
		key = utils.SaveKey()
	} else {
		key = append([]byte(nil), key...)
	}
	return &XOROperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_XOR,
			OpName: "XOR",
		},
		key: key,
	}
}

// Key returns a copy of the operation's key
func (o *XOROperation) Key() []byte {
	return append([]byte(nil), o.key...)
}

// Apply XORs input in place and returns it
func (o *XOROperation) Apply(input []byte) ([]byte, error) {
	utils.XORApply(input, o.key)
	return input, nil
}

// Reverse is identical to Apply
func (o *XOROperation) Reverse(input []byte) ([]byte, error) {
	return o.Apply(input)
}
