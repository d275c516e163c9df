package pkg

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/savecodec/pkg/save"
	"github.com/provide-io/savecodec/pkg/utils/permissions"
)

// Direction selects which way a conversion runs
type Direction string

const (
	ToJSONDirection   Direction = "to-json"
	FromJSONDirection Direction = "from-json"
)

// Options configures a single conversion
type Options struct {
	InPath  string
	OutPath string
	// Mode of the written file; zero selects permissions.DefaultFilePerms.
	Mode   os.FileMode
	Logger hclog.Logger
}

func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

func (o Options) mode() os.FileMode {
	if o.Mode == 0 {
		return permissions.DefaultFilePerms
	}
	return o.Mode
}

// Convert runs one conversion in the given direction
func Convert(direction Direction, opts Options) error {
	switch direction {
	case ToJSONDirection:
		return ToJSON(opts)
	case FromJSONDirection:
		return FromJSON(opts)
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
}

// ToJSON decodes the save file at opts.InPath and writes the JSON to opts.OutPath
func ToJSON(opts Options) error {
	logger := opts.logger()
	logger.Info("📖 Reading save file", "path", opts.InPath)

	text, err := save.ReadInputText(opts.InPath)
	if err != nil {
		return err
	}

	plain, err := save.NewTranscoder(logger).Decode(text)
	if err != nil {
		return err
	}

	if err := save.WriteOutput(opts.OutPath, plain, opts.mode(), logger); err != nil {
		return err
	}

	logger.Info("✅ Wrote JSON", "path", opts.OutPath, "size", len(plain))
	return nil
}

// FromJSON encodes the JSON file at opts.InPath and writes the save to opts.OutPath
func FromJSON(opts Options) error {
	logger := opts.logger()
	logger.Info("📖 Reading JSON file", "path", opts.InPath)

	plain, err := save.ReadInput(opts.InPath)
	if err != nil {
		return err
	}

	text := save.NewTranscoder(logger).Encode(plain)

	if err := save.WriteOutput(opts.OutPath, []byte(text), opts.mode(), logger); err != nil {
		return err
	}

	logger.Info("✅ Wrote save file", "path", opts.OutPath, "size", len(text))
	return nil
}
