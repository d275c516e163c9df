// Package save converts between the game's save encoding and plain JSON.
//
// A save file is the JSON text XORed with a short repeating key and then
// base64 encoded. Decoding runs the same chain backwards.
package save

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	saveerrors "github.com/provide-io/savecodec/pkg/save/errors"
	"github.com/provide-io/savecodec/pkg/save/operations"
	_ "github.com/provide-io/savecodec/pkg/save/operations/encode" // registers XOR and BASE64
)

// DecodeSave turns save text into the plain JSON bytes it obfuscates.
func DecodeSave(text string) ([]byte, error) {
	plain, err := operations.ReverseChain([]byte(text), operations.SaveChain)
	if err != nil {
		return nil, &saveerrors.DecodeError{Err: err}
	}
	return plain, nil
}

// EncodeSave turns plain JSON bytes into save text. plain is not modified.
func EncodeSave(plain []byte) string {
	buf := make([]byte, len(plain))
	copy(buf, plain)

	text, err := operations.ApplyChain(buf, operations.SaveChain)
	if err != nil {
		// Both operations in the save chain are total.
		panic(fmt.Sprintf("save: encoding chain failed: %v", err))
	}
	return string(text)
}

// Transcoder wraps DecodeSave and EncodeSave with logging
type Transcoder struct {
	logger hclog.Logger
}

// NewTranscoder creates a Transcoder. A nil logger discards output.
func NewTranscoder(logger hclog.Logger) *Transcoder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Transcoder{logger: logger}
}

// Decode decodes save text, see DecodeSave
func (t *Transcoder) Decode(text string) ([]byte, error) {
	t.logger.Debug("🔓 Decoding save",
		"chain", chainName(),
		"input_size", len(text))

	plain, err := DecodeSave(text)
	if err != nil {
		t.logger.Debug("Decode failed", "error", err)
		return nil, err
	}

	t.logger.Debug("✅ Save decoded", "output_size", len(plain))
	return plain, nil
}

// Encode encodes plain JSON bytes, see EncodeSave
func (t *Transcoder) Encode(plain []byte) string {
	t.logger.Debug("🔒 Encoding save",
		"chain", chainName(),
		"input_size", len(plain))

	text := EncodeSave(plain)

	t.logger.Debug("✅ Save encoded", "output_size", len(text))
	return text
}

func chainName() string {
	packed, err := operations.PackOperations(operations.SaveChain)
	if err != nil {
		return "invalid"
	}
	return operations.OperationsToString(packed)
}
