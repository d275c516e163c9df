package encode

import (
	"bytes"
	"encoding/base64"

	"github.com/provide-io/savecodec/pkg/save/operations"
)

func init() {
	operations.Register(NewBase64Operation())
}

// saveEncoding is standard padded base64 that also rejects non-zero
// trailing bits.
var saveEncoding = base64.StdEncoding.Strict()

// Base64Operation implements RFC 4648 standard base64 with padding
type Base64Operation struct {
	operations.BaseOperation
}

// NewBase64Operation creates a new base64 operation
func NewBase64Operation() *Base64Operation {
	return &Base64Operation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_BASE64,
			OpName: "BASE64",
		},
	}
}

// Apply encodes input as base64 text. It never fails.
func (o *Base64Operation) Apply(input []byte) ([]byte, error) {
	out := make([]byte, saveEncoding.EncodedLen(len(input)))
	saveEncoding.Encode(out, input)
	return out, nil
}

// Reverse decodes base64 text. Line breaks are rejected rather than
// skipped, unlike the encoding/base64 default.
func (o *Base64Operation) Reverse(input []byte) ([]byte, error) {
	if i := bytes.IndexAny(input, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}

	out := make([]byte, saveEncoding.DecodedLen(len(input)))
	n, err := saveEncoding.Decode(out, input)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}
